package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), stdio{out: os.Stdout, err: os.Stderr}))
}
