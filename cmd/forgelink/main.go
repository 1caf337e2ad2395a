// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

// forgelink renders a markdown document to HTML with forge references
// ("#45", "!123", "ns/proj$7", pasted forge URLs) rewritten into
// hyperlinks.
//
// Usage:
//
//	forgelink --forge forge.jsonc --project ns/proj doc.md
//	forgelink --forge forge.jsonc --project ns/proj --html page.html
//	forgelink --version
//
// The forge fixture is a JSONC file describing projects and their
// referencable objects (see lib/forge). The input file may be "-"
// for stdin; output goes to stdout unless --output is given.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/forgelink/forgelink/lib/config"
	"github.com/forgelink/forgelink/lib/forge"
	"github.com/forgelink/forgelink/lib/markdown"
	"github.com/forgelink/forgelink/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("forgelink", pflag.ContinueOnError)
	forgePath := flags.String("forge", "", "JSONC forge fixture describing projects and objects")
	projectPath := flags.String("project", "", "ambient project path, e.g. ns/proj")
	configPath := flags.String("config", "", "YAML config file (default: $"+config.EnvVar+")")
	htmlInput := flags.Bool("html", false, "input is already-rendered HTML; skip the markdown step")
	outputPath := flags.String("output", "", "write output to this file instead of stdout")
	showVersion := flags.Bool("version", false, "print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: forgelink --forge <fixture.jsonc> --project <ns/proj> [flags] <file.md|->\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Printf("forgelink %s\n", version.Info())
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *forgePath == "" {
		return fmt.Errorf("--forge is required")
	}
	if *projectPath == "" {
		return fmt.Errorf("--project is required")
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("exactly one input file expected, got %d", flags.NArg())
	}

	store, err := forge.ReadFile(*forgePath)
	if err != nil {
		return err
	}
	kinds := store.Kinds()
	project, err := kinds[0].LookupProjectByToken(*projectPath)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("project %q not present in %s", *projectPath, *forgePath)
	}

	source, err := readInput(flags.Arg(0))
	if err != nil {
		return err
	}

	pipeline := &markdown.Pipeline{
		Project:        project,
		Kinds:          kinds,
		HighlightStyle: cfg.HighlightStyle,
		Logger:         logger,
	}

	var output []byte
	if *htmlInput {
		output, err = pipeline.RewriteHTML(source)
	} else {
		output, err = pipeline.Render(source)
	}
	if err != nil {
		return err
	}

	return writeOutput(*outputPath, output)
}

// readInput reads the named file, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes to the named file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
