package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordsheet/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-renders a chord sheet when it changes",
	Long:  `Renders a chord sheet, then renders it again every time the file is saved.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		// stat before the first render so a save during it still counts
		last, err := modTime(path)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		rerender(out, path)
		return watchFile(ctx, path, last, cfg.Watch.Interval(), cfg.Watch.Debounce(), func() {
			rerender(out, path)
		})
	},
}

func rerender(out io.Writer, path string) {
	lines, err := loadLines(path)
	if err != nil {
		// keep watching, the next save may fix it
		logger.Error("Could not render song", zap.String("path", path), zap.Error(err))
		return
	}
	fmt.Fprint(out, render.Render(lines))
}

// watchFile polls path every interval and calls onChange once its
// modification time has moved away from last and then stopped changing for
// wait. It returns when ctx is done.
func watchFile(ctx context.Context, path string, last time.Time, interval time.Duration, wait time.Duration, onChange func()) error {
	debounced := debounce.New(wait)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Watching", zap.String("path", path), zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			mt, err := modTime(path)
			if err != nil {
				logger.Warn("Could not stat song", zap.String("path", path), zap.Error(err))
				continue
			}
			if !mt.Equal(last) {
				last = mt
				logger.Debug("Song changed", zap.String("path", path), zap.Time("modified", mt))
				debounced(onChange)
			}
		}
	}
}

func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "could not stat song")
	}
	return info.ModTime(), nil
}
