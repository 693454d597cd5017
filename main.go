package main

import (
	"fmt"
	"os"

	"marketspace/internal/command"
)

func main() {
	if err := command.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
