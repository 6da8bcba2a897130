// Command srcfind is an interactive "find in source" tool: it searches
// source files for a needle snippet, matching regardless of the
// haystack's or the needle's coding style (case, snake_case vs
// camelCase, digraphs and alternative operator spellings, and more).
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-srcfind/cmd/srcfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
