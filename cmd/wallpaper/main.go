package main

import (
	"os"

	"github.com/youruser/yeardots/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
