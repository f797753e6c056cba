package main

import "github.com/negips/nek1093/cmd"

func main() {
	cmd.Execute()
}
