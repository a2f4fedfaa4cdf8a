package main

import "github.com/xvierd/glint/cmd"

func main() {
	cmd.Execute()
}
