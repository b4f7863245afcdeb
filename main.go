//go:build !(js || wasm)

package main

import (
	"os"
)

func main() {
	err := execute(os.Stdout, os.Stderr, os.Args[1:]...)
	if err != nil {
		os.Exit(1)
	}
}
