// Command listprops lists the metadata properties of files.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/simonhull/listprops/internal/console"
	"github.com/simonhull/listprops/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	logger.Sync()

	if err := console.PromptAndWaitIfSoleConsole(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
