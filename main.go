package main

import (
	"github.com/they4kman/buscaminas/cmd"
)

func main() {
	cmd.Execute()
}
