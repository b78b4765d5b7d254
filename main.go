package main

import (
	"fmt"

	"github.com/insushim/neis-helper/internal/shell"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	fmt.Printf("%s v%s starting...\n", shell.AppName, version)
	shell.Run(version)
}
