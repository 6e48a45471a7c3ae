package main

import "github.com/jsphweid/chordcraft/cmd"

func main() {
	cmd.Execute()
}
