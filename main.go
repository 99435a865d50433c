package main

import "github.com/harlequix/lofi/cmd"

func main() {
	cmd.Execute()
}
