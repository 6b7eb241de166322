package main

import (
	"fmt"
	"os"

	"github.com/sangkips/salgaderia-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bakeryctl:", err)
		os.Exit(1)
	}
}
