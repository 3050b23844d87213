package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/steve191/personal-expense-tracker/internal/commands"
)

func main() {
	// Optional .env for TRACKER_HOME and friends.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
