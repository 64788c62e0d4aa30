package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/Mindburn-Labs/continuum/pkg/codec"
	"github.com/Mindburn-Labs/continuum/pkg/store"
)

func runImportCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(stderr)
	eventsPath := fs.String("events", "", "event file (.json, .yaml)")
	dbPath := fs.String("db", "", "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *eventsPath == "" || *dbPath == "" {
		fmt.Fprintln(stderr, "import: -events and -db are required")
		return 2
	}

	logger := newLogger(stderr)

	events, err := codec.DecodeFile(*eventsPath)
	if err != nil {
		logger.Error("failed to decode events", "path", *eventsPath, "err", err)
		return 1
	}

	s, err := store.OpenSQLite(*dbPath)
	if err != nil {
		logger.Error("failed to open store", "path", *dbPath, "err", err)
		return 1
	}
	defer func() { _ = s.Close() }()

	if err := s.AppendAll(context.Background(), events); err != nil {
		logger.Error("failed to store events", "err", err)
		return 1
	}

	logger.Info("imported events", "count", len(events), "db", *dbPath)
	fmt.Fprintf(stdout, "imported %d events\n", len(events))
	return 0
}

func runExportCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dbPath := fs.String("db", "", "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *dbPath == "" {
		fmt.Fprintln(stderr, "export: -db is required")
		return 2
	}

	logger := newLogger(stderr)

	s, err := store.OpenSQLite(*dbPath)
	if err != nil {
		logger.Error("failed to open store", "path", *dbPath, "err", err)
		return 1
	}
	defer func() { _ = s.Close() }()

	events, err := s.Load(context.Background())
	if err != nil {
		logger.Error("failed to load events", "err", err)
		return 1
	}

	out, err := codec.EncodeJSON(events)
	if err != nil {
		logger.Error("failed to encode events", "err", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}
