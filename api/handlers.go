package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/host"
)

// Status endpoint: last readings pushed to the display.
func (s *Server) getStatus(c *fiber.Ctx) error {
	return c.JSON(s.status.Snapshot())
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	info, err := host.Info()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":         "ok",
		"host":           info.Hostname,
		"kernel":         info.KernelVersion,
		"service_uptime": time.Since(s.started).Seconds(),
		"timestamp":      time.Now().Unix(),
	})
}
