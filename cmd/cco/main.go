// Program cco loads cascading configuration documents from a working
// directory, merges them into a unified addressable namespace, and
// evaluates a user-supplied expression against it, emitting a Value Tree
// as JSON or YAML.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
