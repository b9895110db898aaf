package main

import (
	"os"

	"syl-localecheck/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
