// cmd/percentview/main.go
package main

import (
	"log"
	"os"

	"github.com/spf13/afero"
)

func main() {
	if err := newRootCommand(afero.NewOsFs(), os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}
