package main

import "jdoc/internal/cli"

func main() {
	cli.Execute()
}
