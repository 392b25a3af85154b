package controller

import (
	"career-path-be/internal/pkg/serverutils"
	"career-path-be/pkg/analytics"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	GetSummary(ctx *fiber.Ctx) error
}

type analyticsController struct {
	summary *analytics.Summary
}

func NewAnalyticsController(summary *analytics.Summary) IAnalyticsController {
	return &analyticsController{summary: summary}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analytics/v1", serverutils.JwtMiddleware)
	h.Get("/summary", c.GetSummary)
}

func (c *analyticsController) GetSummary(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Analytics summary", c.summary.Snapshot()))
}
