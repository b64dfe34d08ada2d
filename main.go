package main

import "ctxkeep/cmd"

func main() {
	cmd.Execute()
}
