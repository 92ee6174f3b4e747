// Package sink writes a sweep's qualified batches to disk, one JSON and
// one CSV file per service per run.
package sink

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jobsift-engine/internal/domain"
)

var csvHeader = []string{
	"service",
	"title",
	"company",
	"city",
	"state",
	"location",
	"posted_date",
	"posted_at",
	"found_time",
	"scraped_at",
	"fingerprint",
}

func WriteJSON(dir, service, runID string, jobs []domain.JobRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", service, runID))

	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s batch: %w", service, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func WriteCSV(dir, service, runID string, jobs []domain.JobRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", service, runID))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, j := range jobs {
		row := []string{
			j.Service,
			j.Title,
			j.Company,
			j.City,
			j.State,
			j.Location,
			j.PostedDate,
			j.PostedAt,
			j.FoundTime,
			j.ScrapedAt,
			j.Fingerprint,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("write %s csv: %w", service, err)
	}
	return path, nil
}
