package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fintracklabs/fintrack/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fintrack crashed: %v\n", r)
			if os.Getenv("FINTRACK_DEBUG") != "" {
				debug.PrintStack()
			}
			os.Exit(2)
		}
	}()

	cmd.Execute()
}
