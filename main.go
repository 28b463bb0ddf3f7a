package main

import "github.com/vibast-solutions/ms-go-authn/cmd"

func main() {
	cmd.Execute()
}
