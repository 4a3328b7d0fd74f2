package main

import "github.com/bmatsuo/tlisp/cmd"

func main() {
	cmd.Execute()
}
