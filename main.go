package main

import "github.com/adhamgad/surplusim/cmd"

func main() {
	cmd.Execute()
}
