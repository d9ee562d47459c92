package main

import "acexspf/cmd"

func main() {
	cmd.Execute()
}
