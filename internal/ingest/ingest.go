// Package ingest loads every configured ledger once at startup.
package ingest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerlens/ledgerlens/internal/bank"
	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/store"
)

const (
	defaultCardFormat = "card"
	defaultBankFormat = "bank"
)

// Dataset is the fully ingested, read-only state every query runs against.
type Dataset struct {
	Store *store.Store
	Bank  bank.Series
}

// Load parses every source in cfg concurrently. Either every source parses
// and a Dataset is returned, or the first error is returned and no Dataset is
// built.
func Load(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Dataset, error) {
	cards := ledger.CardRegistry()
	banks := ledger.BankRegistry()

	cardResults := make([][]model.Transaction, len(cfg.Sources.Cards))
	var entries []model.BankEntry

	g, gctx := errgroup.WithContext(ctx)

	for i, src := range cfg.Sources.Cards {
		i, src := i, src
		g.Go(func() error {
			txns, err := parseFile(gctx, cards, src, defaultCardFormat, cfg.Resolve(src.Path), log)
			if err != nil {
				return fmt.Errorf("card source %s: %w", src.Name, err)
			}
			cardResults[i] = txns
			return nil
		})
	}

	if src := cfg.Sources.Bank; src != nil {
		g.Go(func() error {
			parsed, err := parseFile(gctx, banks, *src, defaultBankFormat, cfg.Resolve(src.Path), log)
			if err != nil {
				return fmt.Errorf("bank source %s: %w", src.Name, err)
			}
			entries = parsed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	series, err := bank.Reconcile(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("reconciling bank entries: %w", err)
	}

	ds := &Dataset{
		Store: store.New(cardResults...),
		Bank:  series,
	}
	log.Info().
		Int("transactions", ds.Store.Len()).
		Int("bank_entries", len(entries)).
		Ints("years", ds.Store.Years()).
		Msg("ingestion complete")
	return ds, nil
}

func parseFile[T any](ctx context.Context, reg *ledger.Registry[T], src config.Source, defaultFormat, path string, log zerolog.Logger) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := src.Format
	if format == "" {
		format = defaultFormat
	}
	parser := reg.Get(format)
	if parser == nil {
		return nil, fmt.Errorf("no parser for format %s", format)
	}

	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	log.Debug().
		Str("source", src.Name).
		Str("format", format).
		Str("path", path).
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("source parsed")
	return records, nil
}
