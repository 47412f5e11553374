package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// AddSwaggerRoutes will add auto generated swagger routes when enabled
func AddSwaggerRoutes(app *fiber.App, cfg *Config) {
	if !cfg.Swagger {
		return
	}
	app.Get("/swagger/*", swagger.New(swagger.Config{
		Title:       "Spatial ToDo API",
		DeepLinking: true,
	}))
}
