// Package export writes best-effort CSV snapshots of the store. A snapshot
// is not crash-consistent: each table is dumped and written independently,
// and files already written stay on disk if a later one fails.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"workflow-manager/internal/errors"
	"workflow-manager/internal/repository/sqlite"
)

// DirStampLayout names export directories at minute resolution, so a rerun
// within the same minute reuses the directory.
const DirStampLayout = "20060102_1504"

// timeNow is a variable so tests can pin the clock
var timeNow = time.Now

// Exporter dumps all workflow tables to CSV files.
type Exporter struct {
	repo      sqlite.Repository
	baseDir   string
	dirPrefix string
}

// New creates an exporter writing under baseDir with the given directory
// prefix.
func New(repo sqlite.Repository, baseDir string, dirPrefix string) *Exporter {
	return &Exporter{
		repo:      repo,
		baseDir:   baseDir,
		dirPrefix: dirPrefix,
	}
}

// ExportSnapshot dumps every export table into <baseDir>/<prefix><stamp>/
// as <table>.csv with the column names as the header row. It returns the
// directory written to.
func (e *Exporter) ExportSnapshot(ctx context.Context) (string, error) {
	stamp := timeNow().Format(DirStampLayout)
	outDir := filepath.Join(e.baseDir, e.dirPrefix+stamp)

	// MkdirAll keeps a rerun within the same minute from failing.
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", errors.NewExportError(outDir, err)
	}

	for _, table := range sqlite.ExportTables {
		if err := e.exportTable(ctx, table, outDir); err != nil {
			return "", err
		}
	}

	return outDir, nil
}

// exportTable writes one table to <outDir>/<table>.csv.
func (e *Exporter) exportTable(ctx context.Context, table string, outDir string) error {
	cols, records, err := e.repo.DumpTable(ctx, table)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, table+".csv")
	f, err := os.Create(path)
	if err != nil {
		return errors.NewExportError(path, err)
	}

	writer := csv.NewWriter(f)
	writer.Write(cols)
	for _, record := range records {
		writer.Write(record)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return errors.NewExportError(path, fmt.Errorf("write csv: %w", err))
	}
	if err := f.Close(); err != nil {
		return errors.NewExportError(path, err)
	}
	return nil
}
