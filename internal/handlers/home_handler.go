package handlers

import "github.com/gofiber/fiber/v2"

// RegisterHomeRoute registers the greeting route at the application root.
func RegisterHomeRoute(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to product catalog!")
	})
}
