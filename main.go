package main

import "github.com/jsphweid/chordflow/cmd"

func main() {
	cmd.Execute()
}
