package main

import "lumber-inventory/cmd"

func main() {
	cmd.Execute()
}
