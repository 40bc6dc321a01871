package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/todosync/internal/server"
	"github.com/dmitrijs2005/todosync/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
