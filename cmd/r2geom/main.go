// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command r2geom runs the geometry kernel on points read from stdin.
//
// Every input line holds the coordinates of one point, separated by spaces
// or commas. Lines starting with '#' are ignored, and a blank line separates
// the polygons given to the clip command.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
