package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *handler) Mount(router fiber.Router) error {
	r := router.Group("/v1")

	r.Get("/status", h.statusHandler)

	return nil
}
