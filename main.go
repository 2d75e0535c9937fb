package main

import "github.com/notargets/goflame/cmd"

func main() {
	cmd.Execute()
}
