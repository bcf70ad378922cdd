package main

import "quicdiff/internal/cli"

func main() {
	cli.Execute()
}
