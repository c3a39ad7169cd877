package main

import "github.com/alexiusacademia/gosbeam/cmd"

func main() {
	cmd.Execute()
}
