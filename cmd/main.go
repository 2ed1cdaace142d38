package main

import cmd "github.com/uyouii/weighted-stats/cmd/wstats"

func main() {
	cmd.Execute()
}
