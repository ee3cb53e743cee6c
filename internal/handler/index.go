package handler

import (
	"trivia-api/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Welcome godoc
// @Summary Liveness check
// @Tags index
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func Welcome(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Success: true, Message: "Welcome User"})
}
