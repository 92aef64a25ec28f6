package main

import "font-catalog/cmd"

func main() {
	cmd.Execute()
}
