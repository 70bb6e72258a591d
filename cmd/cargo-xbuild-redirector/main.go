package main

import (
	"os"

	"github.com/divijg19/cargo-xbuild-redirector/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteEntrypoint())
}
