package main

import "github.com/osama1998H/ocean/cmd"

func main() {
	cmd.Execute()
}
