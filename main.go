package main

import "dashkit/internal/cli"

func main() {
	cli.Execute()
}
