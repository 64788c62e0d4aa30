package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/Mindburn-Labs/continuum/pkg/codec"
	"github.com/Mindburn-Labs/continuum/pkg/continuum"
)

func runVerifyCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	eventsPath := fs.String("events", "", "event file (.json, .yaml)")
	records := fs.Bool("records", false, "track historic tenure records")
	runs := fs.Int("runs", 5, "number of recompilations to compare")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *eventsPath == "" {
		fmt.Fprintln(stderr, "verify: -events is required")
		return 2
	}

	logger := newLogger(stderr)

	events, err := codec.DecodeFile(*eventsPath)
	if err != nil {
		logger.Error("failed to decode events", "path", *eventsPath, "err", err)
		return 1
	}

	var opts []continuum.Option
	if *records {
		opts = append(opts, continuum.WithTenureRecords())
	}

	fingerprint, err := continuum.VerifyDeterminism(events, *runs, opts...)
	if err != nil {
		logger.Error("verification failed", "err", err)
		return 1
	}
	logger.Debug("verified timeline", "events", len(events), "runs", *runs)

	fmt.Fprintln(stdout, fingerprint)
	return 0
}
