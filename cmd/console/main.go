package main

import (
	"fmt"
	"os"

	"stayhub.admin/internal/console"
)

var version = "dev"

func main() {
	console.SetVersion(version)
	if err := console.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
