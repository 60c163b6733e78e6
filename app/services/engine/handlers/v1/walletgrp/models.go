package walletgrp

import (
	"time"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/mycoinlabs/mycoin/foundation/ledger/state"
	"github.com/shopspring/decimal"
)

type createRequest struct {
	Secret string `json:"secret"`
}

type accessRequest struct {
	Secret string `json:"secret" validate:"required"`
}

type createdWallet struct {
	Address string `json:"address"`
	Secret  string `json:"secret"`
}

type accessedWallet struct {
	Address string `json:"address"`
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
	Direction   string          `json:"direction"`
}

type balance struct {
	Address      string          `json:"address"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []tran          `json:"transactions"`
}

func toBalance(bal state.Balance) balance {
	trans := make([]tran, len(bal.Transactions))
	for i, tx := range bal.Transactions {
		direction := "received"
		if tx.FromID == bal.Address {
			direction = "sent"
		}

		trans[i] = tran{
			Hash:        tx.Hash,
			From:        tx.FromID,
			To:          tx.ToID,
			Amount:      tx.Value,
			Fee:         tx.Fee,
			TimeStamp:   tx.TimeStamp,
			Status:      tx.Status,
			BlockNumber: tx.BlockNumber,
			Direction:   direction,
		}
	}

	return balance{
		Address:      bal.Address,
		Balance:      bal.Balance,
		Transactions: trans,
	}
}
