package main

import (
	"os"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
