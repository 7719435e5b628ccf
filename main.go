package main

import "github.com/nitpicker55555/phenodb/cmd"

func main() {
	cmd.Execute()
}
