// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dimetric/dimetric/lib/codec"
	"github.com/dimetric/dimetric/lib/quantity"
	"github.com/dimetric/dimetric/lib/unit"
	"github.com/dimetric/dimetric/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before anything else. With --verbose the
	// detailed build information is printed instead.
	wantVersion, wantFull := false, false
	for _, argument := range os.Args[1:] {
		switch argument {
		case "--version":
			wantVersion = true
		case "--verbose":
			wantFull = true
		}
	}
	if wantVersion {
		if wantFull {
			fmt.Printf("dimetric-convert %s\n", version.Full())
		} else {
			fmt.Printf("dimetric-convert %s\n", version.Info())
		}
		return 0
	}

	var (
		value     float64
		category  string
		from      string
		to        string
		format    string
		precision string
		jobsPath  string
		list      bool
		verbose   bool
	)

	flagSet := pflag.NewFlagSet("dimetric-convert", pflag.ContinueOnError)
	flagSet.Float64Var(&value, "value", 0, "value to convert")
	flagSet.StringVar(&category, "category", "", "unit category, such as energy or pressure")
	flagSet.StringVar(&from, "from", "", "unit the value is expressed in")
	flagSet.StringVar(&to, "to", "", "unit to express the value in")
	flagSet.StringVar(&format, "format", "text", "output format: text, json, yaml, cbor, or cbor-diag")
	flagSet.StringVar(&precision, "precision", "double", "significant digits: double (15) or single (6)")
	flagSet.StringVar(&jobsPath, "jobs", "", "JSONC file holding an array of conversions")
	flagSet.BoolVar(&list, "list", false, "list categories and their units")
	flagSet.BoolVar(&verbose, "verbose", false, "log conversion diagnostics to stderr")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	renderPrecision, err := parsePrecision(precision)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	switch {
	case list:
		if err := listCategories(os.Stdout, category); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0

	case jobsPath != "":
		jobs, err := readJobs(jobsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		records, err := runJobs(logger, jobs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		if err := emit(os.Stdout, format, renderPrecision, records...); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		return 0

	default:
		if category == "" || from == "" || to == "" {
			fmt.Fprintf(os.Stderr, "error: --category, --from, and --to are required\n")
			flagSet.PrintDefaults()
			return 2
		}
		record, err := convertOne(logger, job{Value: value, Category: category, From: from, To: to})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		if err := emit(os.Stdout, format, renderPrecision, record); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		return 0
	}
}

// parsePrecision maps the --precision spelling to a digit count.
func parsePrecision(spelling string) (int, error) {
	switch spelling {
	case "double":
		return 15, nil
	case "single":
		return 6, nil
	default:
		return 0, fmt.Errorf("unknown precision %q (want double or single)", spelling)
	}
}

// convertOne resolves the job's category and unit spellings and
// performs the conversion.
func convertOne(logger *slog.Logger, j job) (quantity.Record, error) {
	descriptor, ok := unit.LookupCategory(j.Category)
	if !ok {
		return quantity.Record{}, fmt.Errorf("unknown category %q", j.Category)
	}
	converted, err := descriptor.Convert(j.Value, j.From, j.To)
	if err != nil {
		return quantity.Record{}, err
	}
	logger.Debug("converted",
		"category", j.Category,
		"value", j.Value,
		"from", j.From,
		"to", j.To,
		"result", converted)
	return quantity.Record{Value: converted, Unit: abbreviationFor(descriptor, j.To)}, nil
}

// abbreviationFor returns the display abbreviation of the unit the
// spelling names. The spelling is known to resolve: Convert succeeded.
func abbreviationFor(descriptor *unit.Descriptor, spelling string) string {
	for _, u := range descriptor.Units {
		for _, candidate := range u.Spellings {
			if candidate == spelling {
				return u.Abbreviation
			}
		}
	}
	return spelling
}

// emit writes records to w in the requested format. A single record is
// emitted bare; multiple records are emitted as an array.
func emit(w io.Writer, format string, digits int, records ...quantity.Record) error {
	switch format {
	case "text":
		for _, record := range records {
			fmt.Fprintf(w, "%s %s\n", strconv.FormatFloat(record.Value, 'g', digits, 64), record.Unit)
		}
		return nil

	case "json":
		encoder := json.NewEncoder(w)
		if len(records) == 1 {
			return encoder.Encode(records[0])
		}
		return encoder.Encode(records)

	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		if len(records) == 1 {
			return encoder.Encode(records[0])
		}
		return encoder.Encode(records)

	case "cbor":
		encoded, err := encodeCBOR(records)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, hex.EncodeToString(encoded))
		return nil

	case "cbor-diag":
		// Diagnostic notation of the same deterministic encoding the
		// cbor format emits, for eyeballing payloads.
		encoded, err := encodeCBOR(records)
		if err != nil {
			return err
		}
		notation, err := codec.Diagnose(encoded)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, notation)
		return nil

	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml, cbor, or cbor-diag)", format)
	}
}

// encodeCBOR marshals a single record bare and several as an array,
// matching the other formats' shape.
func encodeCBOR(records []quantity.Record) ([]byte, error) {
	var payload any = records
	if len(records) == 1 {
		payload = records[0]
	}
	return codec.Marshal(payload)
}
