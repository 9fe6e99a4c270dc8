package main

import (
	"github.com/vsyslabs/vsysctl/cmd/vsysctl"
)

func main() {
	vsysctl.Execute()
}
