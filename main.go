package main

import (
	"os"

	"github.com/stocksmcp/stocks-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
