package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger carimba um id de requisição e mede a duração das rotas de
// escrita e de relatório
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Rotas monitoradas: tudo que grava e os relatórios agregados
		monitoredRoutes := []string{
			"/checklists-diarios",
			"/relatorios",
		}

		shouldMonitor := c.Method() != fiber.MethodGet
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		requestID := uuid.New().String()
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.Printf(
			"[REQUEST] %s %s %s - %d - Duration: %v",
			requestID,
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
		)

		return err
	}
}
