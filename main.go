package main

import "github.com/philipparndt/gorig/internal/cmd"

func main() {
	cmd.Parse()
}
