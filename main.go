package main

import "github.com/albumpress/cli/cmd"

func main() {
	cmd.Execute()
}
