package main

import "github.com/simivar/dpf-sprite-browser/src/cmd"

func main() {
	cmd.Execute()
}
