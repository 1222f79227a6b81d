package main

import "github.com/keshon/promptvc/internal/cli"

func main() {
	cli.Execute()
}
