package main

import "travel-booking/cmd"

func main() {
	cmd.Run()
}
