package handlers

import (
	"solarhub-portal/internal/core/services"
	"solarhub-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CalcHandler proxies calculator requests to the external calculation API
type CalcHandler struct {
	calcService *services.CalcService
}

// NewCalcHandler creates a new calc handler
func NewCalcHandler(calcService *services.CalcService) *CalcHandler {
	return &CalcHandler{calcService: calcService}
}

// Estimate forwards a calculation request upstream
// @Summary Run savings estimate
// @Description Forward load/tariff/battery parameters to the calculation service
// @Tags Calculator
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/calc/estimate [post]
func (h *CalcHandler) Estimate(c *fiber.Ctx) error {
	result, err := h.calcService.Estimate(c.Context(), c.Body())
	if err != nil {
		return response.InternalServerError(c, "Calculation service unavailable")
	}
	return relay(c, result)
}

// EstimateDetail forwards a detailed calculation request upstream
// @Summary Run savings estimate with intermediate values
// @Description Forward parameters to the calculation service's detail endpoint
// @Tags Calculator
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/calc/estimate/detail [post]
func (h *CalcHandler) EstimateDetail(c *fiber.Ctx) error {
	result, err := h.calcService.EstimateDetail(c.Context(), c.Body())
	if err != nil {
		return response.InternalServerError(c, "Calculation service unavailable")
	}
	return relay(c, result)
}

// relay returns the upstream response with its original status code
func relay(c *fiber.Ctx, result *services.CalcResult) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(result.StatusCode).Send(result.Body)
}
