package main

import "adserr/cmd"

func main() {
	cmd.Execute()
}
