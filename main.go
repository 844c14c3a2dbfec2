package main

import "pomoplanner.com/pomoplanner/cmd"

func main() {
	cmd.Execute()
}
