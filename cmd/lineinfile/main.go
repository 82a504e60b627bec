package main

import (
	"os"

	"github.com/jwodder/lineinfile/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
