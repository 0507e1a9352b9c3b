package main

import "github.com/CrestNiraj12/terminalconfess/cmd"

func main() {
	cmd.Execute()
}
