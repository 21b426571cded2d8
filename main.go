package main

import "github.com/aidan2b/data-describer/cmd"

func main() {
	cmd.Execute()
}
