package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/spatial-todo/config"
	"github.com/jalexanderII/spatial-todo/database"
	_ "github.com/jalexanderII/spatial-todo/docs"
	"github.com/jalexanderII/spatial-todo/handlers"
	"github.com/jalexanderII/spatial-todo/router"
	"github.com/sirupsen/logrus"
)

// New builds the Fiber app with middleware, routes and swagger over store.
func New(cfg *config.Config, store database.ToDoStore, l *logrus.Logger) *fiber.App {
	// create app
	app := fiber.New(fiber.Config{
		AppName:               "spatial-todo",
		DisableStartupMessage: true,
	})

	// attach middleware
	FiberMiddleware(app, cfg, l)

	// setup routes
	router.SetupRoutes(app, handlers.NewHandler(store, l))

	// attach swagger
	config.AddSwaggerRoutes(app, cfg)

	return app
}

// SetupAndRunApp handle app and database start and graceful shutdown
func SetupAndRunApp(cfg *config.Config) error {
	l := NewLogger(cfg)

	// start database
	store, err := database.New(context.Background(), cfg, l)
	if err != nil {
		return err
	}

	// defer closing database
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			l.WithError(err).Error("Error closing the document store")
		}
	}()

	app := New(cfg, store, l)

	StartServerWithGracefulShutdown(app, cfg.Addr(), l)

	return nil
}
