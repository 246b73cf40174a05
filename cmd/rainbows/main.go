package main

import (
	"os"

	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/cli"
)

// version is stamped by -ldflags at release time.
var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
