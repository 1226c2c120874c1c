package main

import (
	"context"
	"os"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

func main() {
	code := ExitSuccess
	if err := newRootCmd(&code).ExecuteContext(context.Background()); err != nil {
		os.Exit(ExitFailure)
	}
	os.Exit(code)
}
