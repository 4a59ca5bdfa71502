package main

import "github.com/oskarkook/ctxrank/cmd"

func main() {
	cmd.Execute()
}
