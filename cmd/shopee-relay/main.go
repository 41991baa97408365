// Package main is the entry point for the shopee-relay server.
package main

import (
	"os"

	"github.com/affiliatehub/shopee-relay/cmd/shopee-relay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
