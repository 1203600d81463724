// internal/cli/run.go
package cli

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"

	"github.com/spf13/cobra"

	"go-skewrect/internal/harness"
)

type runOpts struct {
	scene       sceneFlags
	label       bool
	snapshotDir string
	pprof       string // listen address for net/http/pprof, empty disables it
}

func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{snapshotDir: "snapshots"}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the sketch window",
		Long: `Open the sketch window and play the scene.

Keys: space pauses, r rolls a new seed, s saves a PNG snapshot, l toggles the seed label.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSketch(cmd.Context(), &opts)
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().BoolVar(&opts.label, "label", false, "show the seed label on start")
	cmd.Flags().StringVar(&opts.snapshotDir, "snapshot-dir", opts.snapshotDir, "directory for snapshots taken with s")
	cmd.Flags().StringVar(&opts.pprof, "pprof", "", "serve net/http/pprof on this address (e.g. localhost:6060)")

	return cmd
}

func (c *CLI) runSketch(ctx context.Context, opts *runOpts) error {
	logger := loggerFromContext(ctx)

	sc, err := opts.scene.buildScene(logger)
	if err != nil {
		return err
	}

	if opts.pprof != "" {
		srv := &http.Server{Addr: opts.pprof}
		go func() {
			logger.Info("pprof listening", "addr", opts.pprof)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("pprof stopped", "err", err)
			}
		}()
		defer srv.Close()
	}

	logger.Info("opening sketch", "profile", sc.Profile.Name, "seed", sc.Seed())
	return harness.Run(ctx, sc, harness.Options{
		SnapshotDir: opts.snapshotDir,
		ShowLabel:   opts.label,
		Logger:      logger,
	})
}
