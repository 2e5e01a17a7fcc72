package main

import "tmenu/internal/cli"

func main() {
	cli.Execute()
}
