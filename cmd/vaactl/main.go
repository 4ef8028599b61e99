package main

import "github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/cmd/vaactl/cmd"

func main() {
	cmd.Execute()
}
