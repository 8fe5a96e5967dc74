package main

import "github.com/treekv/treekv-go/cmd/treekv/cmd"

func main() {
	cmd.Execute()
}
