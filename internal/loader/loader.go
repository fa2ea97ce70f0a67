// Package loader discovers delimited source files and materializes each one
// as a table in the store, replacing any existing table of the same name.
package loader

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Prem-himanshu/food-waste-management/internal/config"
	"github.com/Prem-himanshu/food-waste-management/internal/database"
)

// ErrNoSourceFiles is returned when the source directory holds nothing to load.
var ErrNoSourceFiles = errors.New("no source files found")

type Loader struct {
	store     *database.Store
	sourceDir string
}

// LoadedFile reports one materialized table.
type LoadedFile struct {
	Source string `json:"source"`
	Table  string `json:"table"`
	Rows   int    `json:"rows"`
}

func New(store *database.Store, sourceDir string) *Loader {
	return &Loader{
		store:     store,
		sourceDir: sourceDir,
	}
}

// SourceFiles returns the loadable files in the source directory, sorted by
// name so runs are deterministic.
func (l *Loader) SourceFiles() ([]string, error) {
	entries, err := os.ReadDir(l.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", l.sourceDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx":
			files = append(files, filepath.Join(l.sourceDir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Load materializes every source file as a table. The first file that cannot
// be parsed or written aborts the run with an error naming that file; tables
// written earlier in the run are left in place.
func (l *Loader) Load() ([]LoadedFile, error) {
	logg := config.GetLogger()

	files, err := l.SourceFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	db, err := l.store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var loaded []LoadedFile
	for _, file := range files {
		result, err := l.loadFile(db, file)
		if err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", filepath.Base(file), err)
		}
		logg.Infof("Loaded %s into table %s (%d rows)", result.Source, result.Table, result.Rows)
		loaded = append(loaded, result)
	}
	return loaded, nil
}

// loadFile replaces the target table with the file's contents inside a single
// transaction, so a half-written table never survives a failure.
func (l *Loader) loadFile(db *sql.DB, path string) (LoadedFile, error) {
	header, rows, err := readSourceFile(path)
	if err != nil {
		return LoadedFile{}, err
	}
	if len(header) == 0 {
		return LoadedFile{}, errors.New("file has no header row")
	}

	table := TableForFile(path)
	affinities := inferAffinities(header, rows)

	tx, err := db.Begin()
	if err != nil {
		return LoadedFile{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(table)); err != nil {
		return LoadedFile{}, err
	}
	if _, err := tx.Exec(buildCreateStmt(table, header, affinities)); err != nil {
		return LoadedFile{}, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(header)), ",")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(table), placeholders)
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return LoadedFile{}, err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, len(header))
		for i := range header {
			if i < len(row) {
				args[i] = convertValue(row[i], affinities[i])
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return LoadedFile{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return LoadedFile{}, err
	}

	return LoadedFile{
		Source: filepath.Base(path),
		Table:  table,
		Rows:   len(rows),
	}, nil
}

func readSourceFile(path string) ([]string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("file is empty")
	}
	return records[0], records[1:], nil
}

// readXLSX reads the first sheet of a workbook, treating the first row as the
// header the same way the CSV path does.
func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("first sheet is empty")
	}
	return records[0], records[1:], nil
}
