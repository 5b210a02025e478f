package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Provider credentials may live in a local .env during development
	_ = godotenv.Load()

	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
