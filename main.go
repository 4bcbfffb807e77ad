package main

import "repcomp/cmd"

func main() {
	cmd.Execute()
}
