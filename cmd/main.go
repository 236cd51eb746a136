package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/tabstyle/cmd/tabstyle"
	"github.com/dasdy/tabstyle/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignore error if not found)
	_ = godotenv.Load()

	slog.SetDefault(logging.New(os.Stderr, slog.LevelInfo))

	tabstyle.Execute()
}
