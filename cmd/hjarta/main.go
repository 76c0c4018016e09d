// Command hjarta reads a YAML configuration file, merges overrides into it and
// reads or writes values addressed by dotted paths such as "servers[1].host".
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCmd(os.Environ()).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
