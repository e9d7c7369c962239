package main

import (
	"fmt"
	"os"

	"github.com/amirulhakim/waktu-solat/internal/cli"
	"github.com/joho/godotenv"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	// Optional .env for kiosk deployments (WAKTUSOLAT_ZONE etc.). A
	// missing file is the normal case.
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
