package main

import (
	"context"
	"surfmap/cmd/surfmap-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
