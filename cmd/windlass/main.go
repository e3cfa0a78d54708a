package main

import "windlass/internal/cli"

func main() {
	cli.Execute()
}
