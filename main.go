package main

import "github.com/todofile/todo/cmd"

func main() {
	cmd.Execute()
}
