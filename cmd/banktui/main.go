package main

import (
	"github.com/joho/godotenv"

	"banktui/cmd/banktui/commands"
)

func main() {
	// Optional .env for local development; the environment wins otherwise.
	_ = godotenv.Load()

	commands.Execute()
}
