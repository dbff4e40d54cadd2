package main

import "github.com/alexiusacademia/gobrace/cmd"

func main() {
	cmd.Execute()
}
