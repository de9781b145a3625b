package main

import "github.com/pedrofh/portfolio/cmd"

func main() {
	cmd.Execute()
}
