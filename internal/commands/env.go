package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/steve191/personal-expense-tracker/internal/config"
	"github.com/steve191/personal-expense-tracker/internal/store"
)

// env bundles the loaded config and open store for one command invocation.
type env struct {
	cfg   *config.Config
	store *store.Store
}

// openEnv loads tracker.yaml from the home directory and opens the store.
func openEnv() (*env, error) {
	cfgPath := filepath.Join(homeFlag, config.FileName)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s (run 'tracker init' first?): %w", cfgPath, err)
	}

	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, store: st}, nil
}

func (e *env) close() {
	_ = e.store.Close()
}

// currency renders an amount with the configured symbol and thousands
// grouping, e.g. "$1,234.56".
func (e *env) currency(d decimal.Decimal) string {
	f, _ := d.Float64()
	p := message.NewPrinter(language.English)
	return e.cfg.Display.Currency + p.Sprint(number.Decimal(f, number.Scale(2)))
}

// newTable returns a tabwriter for aligned CLI tables.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
