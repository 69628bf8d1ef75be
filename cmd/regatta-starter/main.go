package main

import "github.com/oshokin/regatta-starter/cmd/regatta-starter/cmd"

func main() {
	cmd.Execute()
}
