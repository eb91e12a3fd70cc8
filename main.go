package main

import (
	cmd "github.com/newsner/newsner/cmd/newsner"
	"github.com/newsner/newsner/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting newsner")
	cmd.Execute()
}
