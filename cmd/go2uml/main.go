package main

import "github.com/Samanthapudi-Shakeer/Go2UML/internal/cli"

func main() {
	cli.Execute()
}
