package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Index returns the greeting served at the root path.
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString("Hello, Fiber!")
	}
}

// Add sums the two integer path parameters and returns the equation as
// plain text, e.g. "4 + 5 = 9". The route is registered with integer
// constraints, so non-numeric segments never reach this handler; the
// parameter checks below guard direct registrations without constraints.
func Add() fiber.Handler {
	return func(c *fiber.Ctx) error {
		num1, err := c.ParamsInt("num1")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OPERAND", "operands must be integers")
		}
		num2, err := c.ParamsInt("num2")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OPERAND", "operands must be integers")
		}
		return c.SendString(fmt.Sprintf("%d + %d = %d", num1, num2, num1+num2))
	}
}

// HealthCheck reports service health. The service has no external
// dependencies, so it is healthy whenever it can answer.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a bare liveness endpoint for platform probes.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App) {
	app.Get("/", Index())

	// Integer route constraints mirror the path converter semantics:
	// /add/4/foo and /add/4/ both fall through to the 404 handler.
	app.Get("/add/:num1<int>/:num2<int>", Add())

	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})
}
