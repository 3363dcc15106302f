// Command clientq loads client records and searches them or reports
// duplicates.
package main

import (
	"os"

	"github.com/roach88/clientq/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
