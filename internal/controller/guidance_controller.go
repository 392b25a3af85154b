package controller

import (
	"career-path-be/internal/pkg/serverutils"
	"career-path-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGuidanceController interface {
	RegisterRoutes(r fiber.Router)
	GetStreams(ctx *fiber.Ctx) error
}

type guidanceController struct {
	service service.IGuidanceService
}

func NewGuidanceController(service service.IGuidanceService) IGuidanceController {
	return &guidanceController{service: service}
}

func (c *guidanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guidance/v1")
	h.Get("/streams", c.GetStreams)
}

func (c *guidanceController) GetStreams(ctx *fiber.Ctx) error {
	class := ctx.Query("class", "")

	res, err := c.service.StreamsForClass(ctx.Context(), class)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Streams", res))
}
