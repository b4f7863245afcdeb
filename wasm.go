//go:build js && wasm

package main

import (
	"bytes"
	"syscall/js"
)

func main() {
	js.Global().Set("SeqalgPipe", js.FuncOf(pipe))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}

// pipe runs `seqalg pipe` with the JS arguments and returns what it printed
func pipe(_ js.Value, args []js.Value) any {
	cmdArgs := []string{"pipe"}
	for _, arg := range args {
		cmdArgs = append(cmdArgs, arg.String())
	}
	out := &bytes.Buffer{}
	if err := execute(out, out, cmdArgs...); err != nil {
		return err.Error()
	}
	return out.String()
}
