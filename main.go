package main

import "pitchplot/cmd"

func main() {
	cmd.Execute()
}
