package db

import (
	"context"
	"database/sql"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	"folio/internal/db/models/postgres/public/table"
)

func AddAssetSplits(ctx context.Context, tx *sql.Tx, splits []model.AssetSplit) ([]model.AssetSplit, error) {
	if len(splits) == 0 {
		return []model.AssetSplit{}, nil
	}
	t := table.AssetSplit
	stmt := t.INSERT(t.Symbol, t.Ratio, t.Date).
		MODELS(splits).
		ON_CONFLICT(t.Symbol, t.Ratio, t.Date).DO_NOTHING().
		RETURNING(t.AllColumns)

	result := []model.AssetSplit{}
	err := stmt.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to add asset splits: %w", err)
	}

	return result, nil
}
