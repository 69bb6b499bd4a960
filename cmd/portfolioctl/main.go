package main

import "github.com/dicky/portfolio/internal/interfaces/cli"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
