package main

import (
	"github.com/julien-sobczak/the-notepublisher/cmd"
)

func main() {
	cmd.Execute()
}
