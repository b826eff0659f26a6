// Command box-dump prints the box tree of an ISO base media file. It shows
// what the container reader behind the Isom.* rows sees.
//
// Usage:
//
//	box-dump <file.m4a>
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/listprops/internal/isom"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "box-dump <file>",
		Short:        "Print the box tree of an ISO base media file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(cmd.OutOrStdout(), args[0])
		},
	}
}

func dump(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	return isom.Walk(f, stat.Size(), path, func(depth int, b *isom.Box) error {
		_, err := fmt.Fprintf(w, "%s%s (size: %d, offset: %d)\n", strings.Repeat("  ", depth), b.Type, b.Size, b.Offset)
		return err
	})
}
