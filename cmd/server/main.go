// Package main - Entry point for the archcost HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"archcost/api"
	"archcost/clouds/aws"
	"archcost/core/engine"
	"archcost/internal/config"
	"archcost/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	catalog, err := aws.NewCatalog(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing pricing catalog: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(aws.NewRegistry(), catalog, cfg.AWS.DefaultRegion)
	apiServer := api.NewServer(eng, version)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("archcost server v%s listening on %s\n", version, *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
