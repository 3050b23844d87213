// Package importer runs the statement import pipeline: open the file, parse
// it with the configured format, drop rows already stored, append what is
// left, then reconcile the account against the rule table.
package importer

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/steve191/personal-expense-tracker/internal/dedupe"
	"github.com/steve191/personal-expense-tracker/internal/importlog"
	"github.com/steve191/personal-expense-tracker/internal/model"
	"github.com/steve191/personal-expense-tracker/internal/rules"
	"github.com/steve191/personal-expense-tracker/internal/statement"
)

// Store is the slice of the record store the pipeline needs. It includes the
// rule engine's view because rules run once after every import batch.
type Store interface {
	rules.Store
	ImportFormat() (statement.Format, error)
	ColumnMapping() (dateCol, amountCol, descCol string, err error)
	AppendTransaction(account string, t model.Transaction) (int64, error)
}

// Result reports the outcome of one import batch.
type Result struct {
	Batch  uuid.UUID
	Format statement.Format
	Added  int
}

// Importer orchestrates statement imports for one store.
type Importer struct {
	store   Store
	dataDir string // audit log location; empty disables the log
}

// New creates an Importer.
func New(store Store, dataDir string) *Importer {
	return &Importer{store: store, dataDir: dataDir}
}

// ImportFile imports one statement file into an account. Rows are written
// one at a time: a failure mid-batch leaves prior rows persisted. A missing
// file surfaces as fs.ErrNotExist, which callers treat as a benign
// cancellation.
func (imp *Importer) ImportFile(account, path string) (Result, error) {
	format, err := imp.store.ImportFormat()
	if err != nil {
		return Result{}, fmt.Errorf("reading import format: %w", err)
	}

	parser, err := imp.parser(format)
	if err != nil {
		return Result{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	candidates, err := parser.Parse(f)
	if err != nil {
		return Result{}, err
	}

	existing, err := imp.store.Transactions(account)
	if err != nil {
		return Result{}, fmt.Errorf("loading existing transactions: %w", err)
	}

	fresh := dedupe.FilterNew(candidates, existing, format == statement.FormatOFX)

	batch := uuid.New()
	for _, t := range fresh {
		t.Category = model.CategoryUncategorized
		if _, err := imp.store.AppendTransaction(account, t); err != nil {
			return Result{}, fmt.Errorf("storing transaction: %w", err)
		}
	}

	if err := rules.Apply(imp.store, account); err != nil {
		return Result{}, fmt.Errorf("applying rules: %w", err)
	}

	imp.logBatch(batch, account, format, path, len(fresh))

	slog.Info("statement imported",
		"account", account, "batch", batch, "format", format,
		"parsed", len(candidates), "added", len(fresh))

	return Result{Batch: batch, Format: format, Added: len(fresh)}, nil
}

// parser builds the parser for the configured format. For CSV the column
// mapping must be configured first; that check happens before any row is
// read, so a configuration error never leaves partial writes.
func (imp *Importer) parser(format statement.Format) (statement.Parser, error) {
	var cols statement.ColumnMapping
	if format == statement.FormatCSV {
		dateCol, amountCol, descCol, err := imp.store.ColumnMapping()
		if err != nil {
			return nil, err
		}
		cols, err = statement.NewColumnMapping(dateCol, amountCol, descCol)
		if err != nil {
			return nil, err
		}
	}
	return statement.NewParser(format, cols)
}

// logBatch appends to the audit log. Log trouble must not fail an import
// that already committed.
func (imp *Importer) logBatch(batch uuid.UUID, account string, format statement.Format, path string, added int) {
	if imp.dataDir == "" {
		return
	}
	err := importlog.Append(imp.dataDir, []importlog.Entry{{
		Timestamp: time.Now(),
		Batch:     batch.String(),
		Account:   account,
		Format:    string(format),
		File:      path,
		Added:     added,
	}})
	if err != nil {
		slog.Warn("writing import log failed", "error", err)
	}
}
