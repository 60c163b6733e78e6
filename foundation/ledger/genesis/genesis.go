// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Genesis represents the genesis file.
type Genesis struct {
	Date           time.Time       `json:"date"`
	ChainName      string          `json:"chain_name"`      // Unique name for this running instance.
	Difficulty     int             `json:"difficulty"`      // Leading zero hex characters required of a block hash.
	TransactionFee decimal.Decimal `json:"transaction_fee"` // Flat fee charged to the sender of every transaction.
	OpeningBalance decimal.Decimal `json:"opening_balance"` // Balance credited to every newly created wallet.
}

// =============================================================================

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
