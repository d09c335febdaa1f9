package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

const reportExtension = ".yaml"

// ReportStore persists suite reports.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.SuiteReport) (m.Path, error)
	LoadReports(ctx context.Context, dir m.Path) ([]m.SuiteReport, error)
}

// LocalReportStore writes one YAML document per suite report into a directory.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report into dir, creating dir when needed.
func (s *LocalReportStore) SaveReport(ctx context.Context, dir m.Path, report m.SuiteReport) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	content, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report %s: %w", report.ID, err)
	}

	name := report.CreatedAt.UTC().Format("20060102T150405") + "-" + report.ID + reportExtension
	path := filepath.Join(string(dir), name)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Debug("Saved report", "path", path, "cases", len(report.Cases))

	return m.Path(path), nil
}

// LoadReports reads every report in dir, oldest first. A missing dir holds no
// reports; files that cannot be read or decoded are skipped with a warning.
func (s *LocalReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.SuiteReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	reports := make([]m.SuiteReport, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExtension) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		content, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Skipping unreadable report", "path", path, "error", err)
			continue
		}

		var report m.SuiteReport
		if err := yaml.Unmarshal(content, &report); err != nil {
			slog.Warn("Skipping unreadable report", "path", path, "error", err)
			continue
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}
