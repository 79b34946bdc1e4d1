package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"sampledata/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
