// Package main is the entry point for the mutatest CLI.
package main

import "mutatest.dev/pkg/mutatest/cmd"

func main() {
	cmd.Execute()
}
