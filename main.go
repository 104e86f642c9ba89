package main

import (
	"fmt"
	"os"

	"mockedapi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Printf("server run into an error: %s\n", err)
		os.Exit(1)
	}
}
