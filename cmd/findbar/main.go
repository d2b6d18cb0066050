package main

import (
	"os"

	"findbar/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
