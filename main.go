// Package main is the entry point for the Contascan CLI.
// It is a terminal client for the accounting spreadsheet analysis service.
package main

import (
	"contascan/cli/cmd"
)

func main() {
	cmd.Execute()
}
