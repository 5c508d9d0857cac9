package main

import (
	"github.com/mvp-joe/callscope/internal/cli"
)

func main() {
	cli.Execute()
}
