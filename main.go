package main

import "github.com/deploymenttheory/go-ta1600/cmd"

func main() {
	cmd.Execute()
}
