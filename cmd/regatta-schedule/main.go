package main

import "github.com/oshokin/regatta-starter/cmd/regatta-schedule/cmd"

func main() {
	cmd.Execute()
}
