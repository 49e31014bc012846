package main

import "github.com/SirClappington/competitor-watch/internal/cli"

func main() {
	cli.Execute()
}
