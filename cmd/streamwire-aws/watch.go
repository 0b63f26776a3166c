package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd creates the "watch" subcommand for re-synthesizing on config
// file changes.
func newWatchCmd() *cobra.Command {
	var (
		debounce     time.Duration
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "watch <config>",
		Short: "Re-synthesize on configuration changes",
		Long: `Watch monitors the configuration file for changes and re-synthesizes.

Examples:
    streamwire-aws watch stream.yaml
    streamwire-aws watch stream.yaml -o template.json
    streamwire-aws watch stream.yaml --debounce 1s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], watchOptions{
				debounce:     debounce,
				outputFormat: outputFormat,
				outputFile:   outputFile,
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

type watchOptions struct {
	debounce     time.Duration
	outputFormat string
	outputFile   string
}

// runWatch monitors the config file and re-synthesizes on changes.
func runWatch(configPath string, opts watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}

	// Watch the directory: editors often replace the file on save, which
	// drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}
	fmt.Printf("Watching: %s\n", absPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initial synthesis
	fmt.Println("Running initial synth...")
	resynth(configPath, opts)

	var debounceTimer *time.Timer
	resynthChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case resynthChan <- struct{}{}:
				default:
				}
			})

		case <-resynthChan:
			fmt.Printf("\n[%s] Change detected, re-synthesizing...\n", time.Now().Format("15:04:05"))
			resynth(configPath, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// resynth runs one synthesis pass, reporting failures without exiting.
func resynth(configPath string, opts watchOptions) {
	if err := runSynth(configPath, opts.outputFormat, opts.outputFile, false); err != nil {
		fmt.Fprintf(os.Stderr, "synth failed: %v\n", err)
		return
	}
	if opts.outputFile != "" {
		fmt.Printf("Wrote %s\n", opts.outputFile)
	}
}
