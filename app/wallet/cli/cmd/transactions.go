package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/mycoinlabs/mycoin/foundation/ledger/keys"
	"github.com/spf13/cobra"
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Print the full transaction history for a wallet.",
	Run:   transactionsRun,
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.Flags().StringVarP(&address, "address", "a", "", "Address to query. Derived from the secret when omitted.")
}

func transactionsRun(cmd *cobra.Command, args []string) {
	addr := address
	if addr == "" {
		if secret == "" {
			log.Fatal("an address or secret is required, use --address or --secret")
		}
		addr = keys.DeriveAddress(secret)
	}

	resp, err := http.Get(fmt.Sprintf("%s/v1/tx/list/%s", url, addr))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var trans []tran
	if err := json.NewDecoder(resp.Body).Decode(&trans); err != nil {
		log.Fatal(err)
	}

	for _, tx := range trans {
		fmt.Printf("%s  %-9s  %s -> %s  %s  fee %s  %s\n", tx.TimeStamp, tx.Status, tx.From, tx.To, tx.Amount, tx.Fee, tx.Hash)
	}
}
