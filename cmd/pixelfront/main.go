package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pixelfront/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	baseURL := flag.String("base-url", "", "override product API base URL (optional)")
	route := flag.String("route", "", "initial view as a query string, e.g. \"search=phone&page=2\"")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		BaseURL:    *baseURL,
		Route:      *route,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pixelfront: %v\n", err)
		return 1
	}
	return 0
}
