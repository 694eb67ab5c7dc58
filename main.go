package main

import (
	"os"

	"appliance-portcfg/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
