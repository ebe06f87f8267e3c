// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"lexiscan/internal/config"
	"lexiscan/internal/engine"
	"lexiscan/internal/formatters"
	"lexiscan/internal/observability"
	"lexiscan/internal/pdftext"
	"lexiscan/internal/rules"
	"lexiscan/internal/storage"
	"lexiscan/internal/summary"
	"lexiscan/internal/version"
	"lexiscan/internal/web"

	_ "lexiscan/internal/formatters/json"
	_ "lexiscan/internal/formatters/text"
	_ "lexiscan/internal/formatters/yaml"
)

func main() {
	inputFile := flag.String("file", "", "Path to the document to analyze (.txt or .pdf)")
	inputText := flag.String("text", "", "Document text to analyze (reads stdin when neither -file nor -text is given)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	summaryLength := flag.String("summary-length", "", "Summary length: short, medium, detailed (default: detailed)")
	checksToRun := flag.String("checks", "", "Rule groups to run: clauses, statutory, financial, jurisdiction, or 'all'")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Display detailed information in the report")
	debug := flag.Bool("debug", false, "Enable debug logging of the analysis pipeline")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showVersion := flag.Bool("version", false, "Show version information")
	showFormats := flag.Bool("list-formats", false, "List available output formats")
	serve := flag.Bool("serve", false, "Start the HTTP API server instead of analyzing a document")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	if *showFormats {
		for _, name := range formatters.List() {
			info := formatters.GetFormatInfo(name)
			fmt.Printf("%-8s %s\n", info.Name, info.Description)
		}
		return
	}

	// Colored output only makes sense on a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("CI") != "" {
		*noColor = true
	}

	cfg := loadConfiguration(*configFile)

	if *listProfiles {
		if len(cfg.Profiles) == 0 {
			fmt.Println("No profiles configured.")
			return
		}
		for name, profile := range cfg.Profiles {
			fmt.Printf("%-12s %s\n", name, profile.Description)
		}
		return
	}

	if *profileName != "" {
		if err := cfg.ApplyProfile(*profileName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	format := firstNonEmpty(*outputFormat, cfg.Defaults.Format)
	length := firstNonEmpty(*summaryLength, cfg.Defaults.SummaryLength)
	checks := firstNonEmpty(*checksToRun, cfg.Defaults.Checks)
	isVerbose := *verbose || cfg.Defaults.Verbose
	isDebug := *debug || cfg.Defaults.Debug
	colorOff := *noColor || cfg.Defaults.NoColor

	analyzer := engine.New()

	var debugObs *observability.DebugObserver
	if isDebug {
		debugObs = observability.NewDebugObserver(os.Stderr)
		observer := observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
		observer.DebugObserver = debugObs
		analyzer.SetObserver(observer)
	}

	if *serve {
		if err := runServer(cfg, analyzer); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	content, err := readInput(*inputFile, *inputText, debugObs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := analyzer.Analyze(content, engine.Options{
		SummaryLength: summary.Length(length),
		Groups:        rules.ParseGroups(splitChecks(checks)),
	})

	output, err := formatters.Export(format, result, formatters.FormatterOptions{
		Verbose: isVerbose,
		NoColor: colorOff || *outputFile != "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(output)
}

// loadConfiguration loads config from the given path, or searches the
// standard locations when none is given.
func loadConfiguration(configFile string) *config.Config {
	if configFile == "" {
		configFile = config.FindConfigFile()
	}
	return config.LoadConfigOrDefault(configFile)
}

// readInput resolves the document text from -file, -text, or stdin.
func readInput(inputFile, inputText string, debugObs *observability.DebugObserver) (string, error) {
	if inputText != "" {
		return inputText, nil
	}

	if inputFile != "" {
		if debugObs != nil {
			debugObs.LogDetail("main", fmt.Sprintf("Reading input file: %s", inputFile))
		}
		if strings.EqualFold(filepath.Ext(inputFile), ".pdf") {
			doc, err := pdftext.Extract(inputFile)
			if err != nil {
				return "", err
			}
			return doc.Text, nil
		}
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no input: provide -file, -text, or pipe a document to stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// runServer starts the HTTP API, backed by PostgreSQL when configured and
// by in-memory storage otherwise.
func runServer(cfg *config.Config, analyzer *engine.Analyzer) error {
	var store storage.Store
	if cfg.Server.DatabaseURL != "" {
		pgStore, err := storage.NewPostgresStore(context.Background(), cfg.Server.DatabaseURL)
		if err != nil {
			return err
		}
		defer pgStore.Close()
		store = pgStore
	} else {
		store = storage.NewMemoryStore()
	}

	server := web.NewServer(analyzer, store, cfg.Server.MaxUpload)
	fmt.Fprintf(os.Stderr, "lexiscan %s listening on %s\n", version.Short(), cfg.Server.ListenAddr)
	return server.Run(cfg.Server.ListenAddr)
}

func splitChecks(checks string) []string {
	if checks == "" {
		return nil
	}
	var out []string
	for _, c := range strings.Split(checks, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
