// Command server runs the campus collaboration API.
//
// Usage:
//
//	server [--config=config.yaml] [--env-help]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/campus-collab-backend/internal/app"
	"github.com/heartmarshall/campus-collab-backend/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config (default ./config.yaml if present)")
	envHelp := flag.Bool("env-help", false, "print supported environment variables and exit")
	flag.Parse()

	if *envHelp {
		usage, err := config.Usage()
		if err != nil {
			log.Fatalf("describe config: %v", err)
		}
		fmt.Println(usage)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
