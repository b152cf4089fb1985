package main

import "feather/cmd"

func main() {
	cmd.Execute()
}
