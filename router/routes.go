package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/spatial-todo/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", handlers.HandleRoot)
	app.Get("/health", handlers.HandleHealthCheck(h))

	app.Get("/showAllToDos", handlers.ShowAllToDos(h))
	app.Post("/addToDo", handlers.AddToDo(h))
	app.Post("/delete/:id", handlers.DeleteToDo(h))
	app.Post("/markdone/:id", handlers.MarkDone(h))
	app.Post("/markundone/:id", handlers.MarkUndone(h))
	app.Post("/update/:id", handlers.UpdateToDo(h))
	app.Post("/updatePosition/:id", handlers.UpdatePosition(h))
}
