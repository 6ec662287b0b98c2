package main

import (
	"os"

	"github.com/LuChatri/j-practice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
