package main

import (
	"fmt"
	"os"

	"github.com/keshon/minigit/cmd/minigit/cmd"
)

func main() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(cmd.Execute(dir, os.Args[1:], os.Stdout))
}
