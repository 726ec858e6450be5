// Package importer executes external SQL scripts against the store for
// bulk data loads.
//
// A script is split into statements on semicolons, with comment lines
// starting with -- skipped. All statements run inside one transaction,
// but a failing statement is logged and skipped rather than aborting the
// load; this per-statement tolerance is a deliberate divergence from the
// all-or-nothing discipline of the order and adjustment workflows.
package importer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/storage"
)

// Result summarizes a bulk import run.
type Result struct {
	Statements int      `json:"statements"`
	Executed   int      `json:"executed"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}

// Importer runs SQL scripts.
type Importer struct {
	store storage.Storage
	log   *zap.Logger
}

// New creates an importer.
func New(store storage.Storage, log *zap.Logger) *Importer {
	return &Importer{store: store, log: log}
}

// RunFile executes the script at path.
func (i *Importer) RunFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import script: %w", err)
	}
	defer func() { _ = f.Close() }()
	return i.Run(ctx, f)
}

// Run executes the script read from r.
func (i *Importer) Run(ctx context.Context, r io.Reader) (*Result, error) {
	statements, err := splitStatements(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import script: %w", err)
	}

	tx, err := i.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	result := &Result{Statements: len(statements)}
	for _, stmt := range statements {
		if err := tx.Exec(ctx, stmt); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			i.log.Warn("import statement failed, skipping",
				zap.String("statement", truncate(stmt, 120)),
				zap.Error(err))
			continue
		}
		result.Executed++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	committed = true

	i.log.Info("import finished",
		zap.Int("statements", result.Statements),
		zap.Int("executed", result.Executed),
		zap.Int("failed", result.Failed))
	return result, nil
}

// splitStatements splits the script on semicolons, dropping lines that
// start with the -- comment marker.
func splitStatements(r io.Reader) ([]string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var statements []string
	for _, part := range strings.Split(sb.String(), ";") {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back off to a rune boundary so the log line stays valid UTF-8.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
