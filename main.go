package main

import (
	"github.com/flickscope/flickscope/cmd"
)

func main() {
	cmd.Execute()
}
