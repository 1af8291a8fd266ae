package main

import (
	"github.com/simongs/swift/pkg/cmd"
)

func main() {
	cmd.Execute()
}
