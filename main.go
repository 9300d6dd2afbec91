package main

import (
	"agri-drone/cmd"
	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
