package main

import (
	"os"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
