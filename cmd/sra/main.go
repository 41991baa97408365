// Package main is the entry point for the sra CLI client.
package main

import (
	"github.com/affiliatehub/shopee-relay/cmd/sra/cmd"
)

func main() {
	cmd.Execute()
}
