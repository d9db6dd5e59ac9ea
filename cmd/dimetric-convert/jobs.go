// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/dimetric/dimetric/lib/quantity"
)

// job is one conversion in a jobs file.
type job struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
}

// parseJobs strips JSONC comments and trailing commas from data, then
// unmarshals the result into a job list.
func parseJobs(data []byte) ([]job, error) {
	stripped := jsonc.ToJSON(data)

	var jobs []job
	if err := json.Unmarshal(stripped, &jobs); err != nil {
		return nil, fmt.Errorf("parsing jobs: %w", err)
	}
	return jobs, nil
}

// readJobs reads a JSONC jobs file from disk and parses it.
func readJobs(path string) ([]job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	jobs, err := parseJobs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jobs, nil
}

// runJobs performs every conversion in order, failing on the first
// job that does not resolve.
func runJobs(logger *slog.Logger, jobs []job) ([]quantity.Record, error) {
	records := make([]quantity.Record, 0, len(jobs))
	for i, j := range jobs {
		record, err := convertOne(logger, j)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}
