package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger verifica la conexión con el almacén.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responde 200 si el almacén contesta al ping y 503 si no.
func HealthHandler(service string, store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": service, "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
