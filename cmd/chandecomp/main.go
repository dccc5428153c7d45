package main

import "github.com/arl/go-chandecomp/cmd/chandecomp/cmd"

func main() {
	cmd.Execute()
}
