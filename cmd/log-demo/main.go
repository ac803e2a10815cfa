package main

import "github.com/oshokin/examples/cmd/log-demo/cmd"

func main() {
	cmd.Execute()
}
