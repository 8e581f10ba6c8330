package main

import "github.com/getcord/importfix/cmd"

func main() {
	cmd.Execute()
}
