package main

import (
	"github.com/jalexanderII/spatial-todo/app"
	"github.com/jalexanderII/spatial-todo/config"
)

// @title Spatial ToDo API
// @version 0.1
// @description CRUD backend for a spatial to-do list: items with a title, description, completion flag and canvas coordinates.
// @license.name MIT
// @host localhost:8000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	err = app.SetupAndRunApp(cfg)
	if err != nil {
		panic(err)
	}
}
