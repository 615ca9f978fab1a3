package main

import (
	"os"

	"github.com/pbakke/bimp/pkg/cli"
)

func main() {
	os.Exit(cli.Run())
}
