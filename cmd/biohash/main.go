package main

import (
	"context"
	"log"

	"github.com/biohash-labs/biohash/internal/cli"
	"github.com/biohash-labs/biohash/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)

}
