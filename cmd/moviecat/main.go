package main

import "github.com/mcoot/moviecat/internal/cli"

func main() {
	cli.Execute()
}
