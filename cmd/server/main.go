package main

import (
	"context"
	"log"
	"os"

	"github.com/xingou/family-health-mcp/internal/server"
	"github.com/xingou/family-health-mcp/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
