package main

import (
	"fmt"
	"os"

	"github.com/teranos/idlgen/cmd/idlgen/commands"
	"github.com/teranos/idlgen/display"
	"github.com/teranos/idlgen/logger"
)

func main() {
	err := commands.RootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, display.FormatError(err))
		os.Exit(1)
	}
}
