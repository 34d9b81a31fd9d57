package main

import "illustrated_research_writer/cmd"

func main() {
	cmd.Execute()
}
