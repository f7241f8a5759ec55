package main

import "github.com/gnames/protdb/cmd"

func main() {
	cmd.Execute()
}
