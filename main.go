package main

import (
	"github.com/sidkik/logloader/cmd"
	"github.com/sidkik/logloader/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
