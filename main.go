package main

import "github.com/darrenoakey/generate-image/cmd"

func main() {
	cmd.Execute()
}
