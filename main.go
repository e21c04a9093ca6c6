package main

import "pdfnamer/cmd"

func main() {
	cmd.Execute()
}
