// Package main is the entry point for the preflight CLI.
package main

import "gooze.dev/pkg/preflight/cmd"

func main() {
	cmd.Execute()
}
