package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/listprops"
	"github.com/simonhull/listprops/internal/config"
	"github.com/simonhull/listprops/internal/logger"
)

func init() {
	// The exit prompt is handled by the console package.
	cobra.MousetrapHelpText = ""
}

func newRootCmd() *cobra.Command {
	var settings *config.Settings

	cmd := &cobra.Command{
		Use:                "listprops [flags] [filenames]",
		Short:              "List the metadata properties of files",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Load(debugBuild)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				s = config.NewDefaultSettings(debugBuild)
			}
			settings = s

			info := listprops.GetVersionInfo()
			lgr := logger.Get(int8(s.ZapLevel()),
				zap.String(logger.VersionKey, info.Version),
				zap.String(logger.CommitKey, info.GitCommit),
			)
			cmd.SetContext(logger.WithLogger(cmd.Context(), lgr))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), parseArgs(args), settings)
		},
	}
	cmd.SetContext(context.Background())

	return cmd
}

// run executes one invocation. Per-file problems are part of the output
// and never make it fail.
func run(ctx context.Context, out io.Writer, inv invocation, settings *config.Settings) error {
	switch {
	case inv.showHelp:
		_, err := fmt.Fprintf(out, "%s\n\n%s\n", helpText, versionLine())
		return err
	case inv.showLicense:
		_, err := fmt.Fprintln(out, licenseText)
		return err
	}

	log := logger.FromContext(ctx)

	lister, err := listprops.New(
		listprops.WithSchemaOverlay(settings.Schemas...),
		listprops.WithLogger(*log),
	)
	if err != nil {
		_, werr := fmt.Fprintln(out, err)
		return werr
	}
	defer closeLister(lister, *log)

	results := lister.Run(ctx, inv.paths)
	return listprops.WriteResults(out, results, inv.render, debugBuild)
}

func closeLister(l *listprops.Lister, log logr.Logger) {
	if err := l.Close(); err != nil {
		log.Error(err, "failed to release property descriptions")
	}
}
