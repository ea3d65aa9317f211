package main

import (
	"log"

	"github.com/Sinhaamisha5/todo-api/app"
	"github.com/Sinhaamisha5/todo-api/config"

	_ "github.com/Sinhaamisha5/todo-api/docs"
)

// @title Todo API
// @version 0.1
// @description A single-resource todo service backed by SQLite.
// @license.name MIT
// @host localhost:5000
// @BasePath /
func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.New()
	if err := app.SetupAndRunApp(cfg); err != nil {
		panic(err)
	}
}
