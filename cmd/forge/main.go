package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/realm-forge/internal/cli"
)

func main() {
	// A .env file is optional; the environment wins over it.
	_ = godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
