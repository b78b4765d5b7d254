package main

import "github.com/insushim/neis-helper/internal/shell"

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	shell.Run(version)
}
