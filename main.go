package main

import "github.com/calder-martin/picosh/cmd"

func main() {
	cmd.Execute()
}
