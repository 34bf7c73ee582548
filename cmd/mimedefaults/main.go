package main

import "mimedefaults/internal/cli"

func main() {
	cli.Execute()
}
