package main

import "github.com/diogo/helpline/internal/commands"

func main() {
	commands.Execute()
}
