package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/Mindburn-Labs/continuum/pkg/codec"
	"github.com/Mindburn-Labs/continuum/pkg/continuum"
)

func runCompileCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	eventsPath := fs.String("events", "", "event file (.json, .yaml)")
	records := fs.Bool("records", false, "track historic tenure records")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *eventsPath == "" {
		fmt.Fprintln(stderr, "compile: -events is required")
		return 2
	}

	logger := newLogger(stderr)

	events, err := codec.DecodeFile(*eventsPath)
	if err != nil {
		logger.Error("failed to decode events", "path", *eventsPath, "err", err)
		return 1
	}

	timeline, err := compileEvents(events, *records)
	if err != nil {
		logger.Error("compilation failed", "err", err)
		return 1
	}
	logger.Debug("compiled timeline", "events", len(events), "instants", timeline.Len())

	renderTimeline(stdout, timeline)
	return 0
}

func compileEvents(events []continuum.Event, records bool) (*continuum.Timeline, error) {
	var opts []continuum.Option
	if records {
		opts = append(opts, continuum.WithTenureRecords())
	}
	return continuum.Compile(events, opts...)
}
