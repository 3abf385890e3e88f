package db

import (
	"database/sql"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
)

func GetHistoricTransfers(tx *sql.Tx) ([]model.Transfer, error) {
	query := Transfer.SELECT(Transfer.AllColumns).ORDER_BY(Transfer.CreatedAt.ASC())
	out := []model.Transfer{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddTransfer ignores transfers that were already recorded
func AddTransfer(tx *sql.Tx, t *model.Transfer) error {
	query := Transfer.INSERT(Transfer.AllColumns).
		MODEL(t).
		ON_CONFLICT(Transfer.TransferID).DO_NOTHING()
	_, err := query.Exec(tx)
	if err != nil {
		return err
	}
	return nil
}
