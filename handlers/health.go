package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// @Summary Show the API banner.
// @Tags root
// @Accept */*
// @Produce plain
// @Success 200 "My API"
// @Router / [get]
func HandleRoot(c *fiber.Ctx) error {
	return c.SendString("My API")
}

// @Summary Show the status of server.
// @Description get the status of server and its document store.
// @Tags health
// @Accept */*
// @Produce plain
// @Success 200 "OK"
// @Failure 503 "Document store unreachable"
// @Router /health [get]
func HandleHealthCheck(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := h.Store.Ping(c.UserContext()); err != nil {
			h.Log(c).WithError(err).Warn("Health check failed")
			return c.Status(fiber.StatusServiceUnavailable).SendString("Document store unreachable")
		}
		return c.SendString("OK")
	}
}
