package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-manager/internal/repository/sqlite"
)

func setupExporter(t *testing.T) (*Exporter, sqlite.Repository, string) {
	tmp := t.TempDir()
	repo, err := sqlite.New(filepath.Join(tmp, "workflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	exportDir := filepath.Join(tmp, "exports")
	return New(repo, exportDir, "export_"), repo, exportDir
}

func pinClock(t *testing.T, ts time.Time) {
	orig := timeNow
	timeNow = func() time.Time { return ts }
	t.Cleanup(func() { timeNow = orig })
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportSnapshot(t *testing.T) {
	exporter, repo, _ := setupExporter(t)
	pinClock(t, time.Date(2026, 8, 24, 10, 30, 0, 0, time.Local))

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		require.NoError(t, repo.CreateEmployee(context.Background(), &sqlite.Employee{Name: name, Role: "staff"}))
	}
	one := int64(1)
	assigned := &sqlite.Task{Title: "Write report", AssigneeID: &one, Status: "todo", Created: "2026-08-24 10:00", Updated: "2026-08-24 10:00"}
	unassigned := &sqlite.Task{Title: "File expenses", Status: "todo", Created: "2026-08-24 10:01", Updated: "2026-08-24 10:01"}
	require.NoError(t, repo.CreateTask(context.Background(), assigned))
	require.NoError(t, repo.CreateTask(context.Background(), unassigned))

	outDir, err := exporter.ExportSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "export_20260824_1030", filepath.Base(outDir))

	employees := readCSV(t, filepath.Join(outDir, "employees.csv"))
	require.Len(t, employees, 4) // header + 3 rows
	assert.Equal(t, []string{"id", "name", "role", "active"}, employees[0])

	tasks := readCSV(t, filepath.Join(outDir, "tasks.csv"))
	require.Len(t, tasks, 3) // header + 2 rows
	assert.Equal(t, []string{"id", "title", "description", "assignee_id", "status", "deadline", "created", "updated"}, tasks[0])

	shifts := readCSV(t, filepath.Join(outDir, "shifts.csv"))
	require.Len(t, shifts, 1) // header only, shifts table is unused
	assert.Equal(t, []string{"id", "employee_id", "start", "end"}, shifts[0])
}

func TestExportSnapshotRerunSameMinute(t *testing.T) {
	exporter, _, _ := setupExporter(t)
	pinClock(t, time.Date(2026, 8, 24, 10, 30, 0, 0, time.Local))

	first, err := exporter.ExportSnapshot(context.Background())
	require.NoError(t, err)

	// Directory already exists; the rerun must not fail
	second, err := exporter.ExportSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportSnapshotCreatesBaseDir(t *testing.T) {
	exporter, _, exportDir := setupExporter(t)
	pinClock(t, time.Date(2026, 8, 24, 10, 30, 0, 0, time.Local))

	_, statErr := os.Stat(exportDir)
	require.True(t, os.IsNotExist(statErr))

	outDir, err := exporter.ExportSnapshot(context.Background())
	require.NoError(t, err)

	info, err := os.Stat(outDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
