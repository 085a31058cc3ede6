// Command ledger is the household ledger's CLI entrypoint: it reads a
// ledger of operations from standard input (or a file named by
// --input), replays them through the engine, and prints the resulting
// debt graph to standard output (§6).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rawblock/household-ledger/internal/engine"
	"github.com/rawblock/household-ledger/internal/ingest"
	"github.com/rawblock/household-ledger/internal/timeline"
	"github.com/rawblock/household-ledger/pkg/model"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath    string
		debug        bool
		traceOut     string
		showTimeline bool
		timelineFrom string
		timelineTo   string
	)

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Replay a household ledger and print the resulting debt graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(inputPath)
			if err != nil {
				return engine.Fatal(engine.KindResource, err)
			}
			defer closeIn()

			var log *engine.Logger
			if debug || traceOut != "" {
				w, closeTrace, err := openTrace(traceOut)
				if err != nil {
					return engine.Fatal(engine.KindResource, err)
				}
				defer closeTrace()
				log = engine.NewLogger(w)
			}

			e := engine.New(log)
			if err := ingest.Scan(in, e.Dispatch); err != nil {
				return err
			}

			if showTimeline {
				from, to, err := parseTimelineRange(timelineFrom, timelineTo)
				if err != nil {
					return engine.Fatal(engine.KindFormat, err)
				}
				if err := timeline.Render(os.Stdout, e.Registry, e.Presence, e.Obligation, from, to); err != nil {
					return engine.Fatal(engine.KindResource, err)
				}
				return nil
			}

			return emitGraph(os.Stdout, e)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "ledger file to read (default: standard input)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable trace logging to standard error")
	cmd.Flags().StringVar(&traceOut, "trace-out", "", "write trace logging to this file instead of standard error")
	cmd.Flags().BoolVar(&showTimeline, "timeline", false, "print an ASCII presence/obligation timeline instead of the debt graph")
	cmd.Flags().StringVar(&timelineFrom, "timeline-from", "", "timeline range start (YYYY-MM-DD), required with --timeline")
	cmd.Flags().StringVar(&timelineTo, "timeline-to", "", "timeline range end (YYYY-MM-DD, exclusive), required with --timeline")

	return cmd
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openTrace(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func parseTimelineRange(from, to string) (model.Time, model.Time, error) {
	if from == "" || to == "" {
		return 0, 0, fmt.Errorf("--timeline requires both --timeline-from and --timeline-to")
	}
	f, err := ingest.ParseDate(from)
	if err != nil {
		return 0, 0, err
	}
	t, err := ingest.ParseDate(to)
	if err != nil {
		return 0, 0, err
	}
	return f, t, nil
}

func emitGraph(w io.Writer, e *engine.Engine) error {
	for _, edge := range e.Graph.NonZero() {
		if _, err := fmt.Fprintln(w, edge.Line(e.Registry.NameOf)); err != nil {
			return engine.Fatal(engine.KindResource, err)
		}
	}
	return nil
}
