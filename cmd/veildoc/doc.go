// Package veildoc provides the command-line interface for the veildoc tool.
// It configures subcommands (scrub, batch, presets, patterns, history),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/veildoc/veildoc/cmd/veildoc"
//	func main() { veildoc.Execute() }
package veildoc
