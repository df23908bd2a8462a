package main

import "github.com/HaiFongPan/tripguide/cmd"

func main() {
	cmd.Execute()
}
