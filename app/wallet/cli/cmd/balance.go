package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/mycoinlabs/mycoin/foundation/ledger/keys"
	"github.com/spf13/cobra"
)

type tran struct {
	Hash      string `json:"hash"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Fee       string `json:"fee"`
	TimeStamp string `json:"timestamp"`
	Status    string `json:"status"`
	Direction string `json:"direction"`
}

type balance struct {
	Address      string `json:"address"`
	Balance      string `json:"balance"`
	Transactions []tran `json:"transactions"`
}

var address string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print your balance with recent activity.",
	Run:   balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().StringVarP(&address, "address", "a", "", "Address to query. Derived from the secret when omitted.")
}

func balanceRun(cmd *cobra.Command, args []string) {
	addr := address
	if addr == "" {
		if secret == "" {
			log.Fatal("an address or secret is required, use --address or --secret")
		}
		addr = keys.DeriveAddress(secret)
	}
	fmt.Println("For Address:", addr)

	resp, err := http.Get(fmt.Sprintf("%s/v1/wallet/balance/%s", url, addr))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("wallet not found: status %d", resp.StatusCode)
	}

	var bal balance
	if err := json.NewDecoder(resp.Body).Decode(&bal); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Balance:", bal.Balance)
	for _, tx := range bal.Transactions {
		fmt.Printf("%s  %-8s  %s -> %s  %s\n", tx.TimeStamp, tx.Direction, tx.From, tx.To, tx.Amount)
	}
}
