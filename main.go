package main

import "github.com/plateiq/menuscope/cmd"

func main() {
	cmd.Execute()
}
