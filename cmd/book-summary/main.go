package main

import (
	"fmt"

	"github.com/dvogt23/book-summary/internal/cli"
	"github.com/dvogt23/book-summary/internal/utils"
)

// main is the entry point for the book-summary command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(false)
	if loggerInitializationError != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Fatal("book-summary failed: " + applicationExecutionError.Error())
	}
}
