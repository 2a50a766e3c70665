package main

import (
	"github.com/memehub/memehub/internal/command"
	"github.com/memehub/memehub/internal/command/serve"
)

func main() {
	command.Main(
		"memehub",
		"Share memes with the world",
		serve.Command(),
	)
}
