package main

import (
	"github.com/inkwell-labs/inkctl/internal/app"
	"github.com/joho/godotenv"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	// Optional .env for local development (INKCTL_API_BASE_URL etc.).
	_ = godotenv.Load()

	app.SetVersion(version)
	app.Execute()
}
