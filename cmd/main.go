package main

import (
	"fmt"
	"os"

	"github.com/imns1ght/data-structures/cmd/cmd"
	"github.com/imns1ght/data-structures/internal/env"
)

func main() {
	PrintBanner()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func PrintBanner() {
	fmt.Println(" _               _     _   _     _ ")
	fmt.Println("| |__   __ _ ___| |__ | |_| |__ | |")
	fmt.Println("| '_ \\ / _` / __| '_ \\| __| '_ \\| |")
	fmt.Println("| | | | (_| \\__ \\ | | | |_| |_) | |")
	fmt.Println("|_| |_|\\__,_|___/_| |_|\\__|_.__/|_|")
	fmt.Println()
	fmt.Println("Separate chaining hash table toolkit")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
