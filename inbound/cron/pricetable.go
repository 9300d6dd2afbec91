package cron

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/common/vars"
	"agri-drone/core/booking"
	"agri-drone/outbound/sqlgen"
	"context"
	"fmt"
	"github.com/spf13/viper"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultRefreshInterval = time.Minute
	defaultRefreshTimeout  = 10 * time.Second
)

// PriceTableCron keeps the shared price table in sync with the store.
type PriceTableCron struct {
	Cfg     *viper.Viper
	Querier *sqlgen.Queries

	mu sync.Mutex
}

func (in *PriceTableCron) Start(ctx context.Context) {
	interval := in.Cfg.GetDuration("pricing.refresh.interval")
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	refreshTicker := time.NewTicker(interval)
	defer refreshTicker.Stop()

	slog.Info("price table cron started")

	for {
		select {
		case <-refreshTicker.C:
			if err := in.Refresh(ctx); err != nil {
				slog.ErrorContext(ctx, "failed to refresh price table", slog.Any(constant.LogFieldErr, err))
			}
		case <-ctx.Done():
			slog.Info("price table cron stopped")
			return
		}
	}
}

// Refresh loads active price items and swaps in a new table. On failure the
// previous table stays in place.
func (in *PriceTableCron) Refresh(ctx context.Context) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	timeout := in.Cfg.GetDuration("pricing.refresh.timeout")
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.DebugContext(ctx, "refreshing price table", traceIdAttr)

	rows, err := in.Querier.ListActivePriceItems(ctx)
	if err != nil {
		return fmt.Errorf("list price items: %w", err)
	}

	table := BuildPriceTable(rows)
	vars.SetPriceTable(table)

	slog.DebugContext(ctx, "price table refreshed", traceIdAttr,
		slog.Int("crops", len(table.Crops())), slog.Int("sprays", len(table.Sprays())))

	return nil
}

// BuildPriceTable splits store rows by kind, keeping their order.
func BuildPriceTable(rows []sqlgen.PriceItem) *booking.PriceTable {
	var crops, sprays []booking.PriceItem
	for _, row := range rows {
		item := booking.PriceItem{
			Key:         row.Key,
			Name:        row.Name,
			PricePerRai: common.DecimalFromNumeric(row.PricePerRai),
		}

		switch row.Kind {
		case constant.PriceKindCrop:
			crops = append(crops, item)
		case constant.PriceKindSpray:
			sprays = append(sprays, item)
		}
	}

	return booking.NewPriceTable(crops, sprays)
}
