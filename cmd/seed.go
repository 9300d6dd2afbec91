package cmd

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/outbound/sqlgen"
	"context"
	"fmt"
	"github.com/shopspring/decimal"
	"log"
	"log/slog"
)

func runSeedPricesCmd(ctx context.Context) {
	cfg := newCfg("env")

	db := newDb(cfg)
	defer db.Close()

	if err := seedPrices(ctx, sqlgen.New(db)); err != nil {
		log.Fatalln("unable to seed prices", err)
	}

	slog.Info("default prices seeded")
}

func seedPrices(ctx context.Context, querier *sqlgen.Queries) error {
	groups := []struct {
		kind  string
		items []constant.DefaultPriceItem
	}{
		{kind: constant.PriceKindCrop, items: constant.DefaultCrops},
		{kind: constant.PriceKindSpray, items: constant.DefaultSprays},
	}

	for _, group := range groups {
		for i, item := range group.items {
			price, err := decimal.NewFromString(item.PricePerRai)
			if err != nil {
				return fmt.Errorf("parse price of %s: %w", item.Key, err)
			}

			_, err = querier.UpsertPriceItem(ctx, sqlgen.UpsertPriceItemParams{
				Kind:        group.kind,
				Key:         item.Key,
				Name:        item.Name,
				PricePerRai: common.NumericFromDecimal(price),
				SortOrder:   int32(i + 1),
				Active:      true,
			})
			if err != nil {
				return fmt.Errorf("upsert %s %s: %w", group.kind, item.Key, err)
			}
		}
	}

	return nil
}
