// Command eqpresetd serves the EQ preset library over HTTP.
//
// Usage:
//
//	eqpresetd [-addr :8080] [-library presets.json]
//
// The flags default to the EQ_ADDR and EQ_LIBRARY environment variables.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cwbudde/algo-eq/internal/api"
	"github.com/cwbudde/algo-eq/internal/library"
)

func main() {
	addr := flag.String("addr", envOr("EQ_ADDR", ":8080"), "listen address")
	libraryPath := flag.String("library", envOr("EQ_LIBRARY", "presets.json"), "preset library file")
	flag.Parse()

	lib, err := library.Open(*libraryPath)
	if err != nil {
		log.Fatalf("failed to load preset library: %v", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.RegisterRoutes(lib),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("eqpresetd listening on %s (library %s)", *addr, lib.Path())
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
