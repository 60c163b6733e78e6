package trangrp

import (
	"time"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/shopspring/decimal"
)

type sendRequest struct {
	From   string          `json:"from" validate:"required"`
	To     string          `json:"to" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Secret string          `json:"secret" validate:"required"`
}

type sendReceipt struct {
	TranHash    string `json:"transaction_hash"`
	BlockHash   string `json:"block_hash"`
	BlockNumber uint64 `json:"block_number"`
}

type tran struct {
	Hash        string          `json:"hash"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	TimeStamp   time.Time       `json:"timestamp"`
	Status      database.Status `json:"status"`
	BlockNumber uint64          `json:"block_number,omitempty"`
}

func toTran(tx database.Tx) tran {
	return tran{
		Hash:        tx.Hash,
		From:        tx.FromID,
		To:          tx.ToID,
		Amount:      tx.Value,
		Fee:         tx.Fee,
		TimeStamp:   tx.TimeStamp,
		Status:      tx.Status,
		BlockNumber: tx.BlockNumber,
	}
}

func toTrans(txs []database.Tx) []tran {
	trans := make([]tran, len(txs))
	for i, tx := range txs {
		trans[i] = toTran(tx)
	}

	return trans
}
