package main

import "github.com/hitmer-tools/dockscore/cmd"

func main() {
	cmd.Execute()
}
