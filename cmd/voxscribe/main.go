package main

import "voxscribe/cmd/voxscribe/cmd"

func main() {
	cmd.Execute()
}
