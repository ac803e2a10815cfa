package main

import "github.com/oshokin/examples/cmd/calculator/cmd"

func main() {
	cmd.Execute()
}
