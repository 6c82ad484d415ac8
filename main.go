package main

import "github.com/nassimmaaoui/portfolio-terminal/cmd/portfolio-terminal/commands"

func main() {
	commands.Execute()
}
