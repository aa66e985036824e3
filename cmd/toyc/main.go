package main

import (
	"os"

	"github.com/msto63/toyc/cmd/toyc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
