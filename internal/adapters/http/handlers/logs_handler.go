package handlers

import (
	"strconv"

	"solarhub-portal/internal/adapters/http/middleware"
	"solarhub-portal/internal/config"
	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/pkg/audit"
	"solarhub-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// defaultLogCount bounds /api/logs responses when count is omitted
const defaultLogCount = 50

// LogsHandler serves the admin-only audit log endpoint
type LogsHandler struct {
	audit audit.Recorder
	cfg   *config.Config
}

// NewLogsHandler creates a new logs handler
func NewLogsHandler(rec audit.Recorder, cfg *config.Config) *LogsHandler {
	return &LogsHandler{
		audit: rec,
		cfg:   cfg,
	}
}

// GetLogs returns recent audit entries, admin only
// @Summary Get audit logs
// @Description Return recent audit log entries, optionally filtered by level
// @Tags Logs
// @Accept json
// @Produce json
// @Param level query string false "Filter by level (debug|info|warn|error)"
// @Param count query int false "Maximum number of entries (default 50)"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} response.ErrorBody
// @Router /api/logs [get]
func (h *LogsHandler) GetLogs(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c, h.cfg.JWT.Secret)

	if identity == nil || identity.Role != domain.RoleAdmin {
		data := map[string]any{}
		if identity != nil {
			data["userId"] = identity.ID
			data["email"] = identity.Email
			data["role"] = string(identity.Role)
		}
		h.audit.Record(audit.LevelWarn, "Unauthorized logs access attempt", data)
		return response.Forbidden(c, "Unauthorized")
	}

	count := defaultLogCount
	if raw := c.Query("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			count = n
		}
	}

	// An unknown level simply matches nothing
	var logs []audit.Entry
	if raw := c.Query("level"); raw != "" {
		logs = h.audit.ByLevel(audit.Level(raw), count)
	} else {
		logs = h.audit.Recent(count)
	}

	// Never null: an empty log set is still a valid response
	if logs == nil {
		logs = []audit.Entry{}
	}

	return c.JSON(fiber.Map{
		"logs": logs,
	})
}
