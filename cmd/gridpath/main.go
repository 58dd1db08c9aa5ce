package main

import "github.com/pdrpinto/gridpath/internal/cli"

func main() {
	cli.Execute()
}
