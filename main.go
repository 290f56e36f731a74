package main

import "github.com/mgrim/logstat/cmd"

func main() {
	cmd.Run()
}
