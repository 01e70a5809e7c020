// Package prelude embeds the standard-library source every session loads
// before the user's own file or REPL input (§4.11 of the spec): numeral
// vocabulary, Peano arithmetic, factorial and list length.
package prelude

import (
	"embed"
	"strings"
)

//go:embed std.tampio
var assets embed.FS

// Lines returns the standard library's source, split the same way a driver
// splits a loaded file: one slice entry per physical line, in order.
func Lines() []string {
	data, err := assets.ReadFile("std.tampio")
	if err != nil {
		// The file is compiled into the binary; a missing embed is a build
		// error, not a runtime condition callers need to handle.
		panic(err)
	}

	return strings.Split(string(data), "\n")
}
