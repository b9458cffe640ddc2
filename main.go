package main

import "github.com/gregLibert/oathmfa/cmd"

func main() {
	cmd.Execute()
}
