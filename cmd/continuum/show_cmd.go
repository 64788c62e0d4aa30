package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/Mindburn-Labs/continuum/pkg/codec"
	"github.com/Mindburn-Labs/continuum/pkg/continuum"
)

func runShowCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	eventsPath := fs.String("events", "", "event file (.json, .yaml)")
	date := fs.String("date", "", `instant date ("" is the genesis instant)`)
	records := fs.Bool("records", false, "track historic tenure records")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *eventsPath == "" {
		fmt.Fprintln(stderr, "show: -events is required")
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

	inst, ok := timeline.Instant(continuum.Date(*date))
	if !ok {
		logger.Error("no instant at date", "date", *date, "instants", timeline.Instants())
		return 1
	}

	out, err := json.MarshalIndent(inst, "", "  ")
	if err != nil {
		logger.Error("failed to encode instant", "err", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}
