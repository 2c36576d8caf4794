// Package main is the entry point for the runnergen CLI.
package main

import "runnergen.dev/pkg/runnergen/cmd"

func main() {
	cmd.Execute()
}
