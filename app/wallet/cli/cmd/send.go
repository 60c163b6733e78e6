package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/mycoinlabs/mycoin/foundation/ledger/keys"
	"github.com/spf13/cobra"
)

var (
	to     string
	amount string
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send coins to another wallet",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Address to send to.")
	sendCmd.Flags().StringVarP(&amount, "amount", "v", "", "Amount to send.")
}

func sendRun(cmd *cobra.Command, args []string) {
	if secret == "" {
		log.Fatal("a secret is required, use --secret")
	}
	from := keys.DeriveAddress(secret)

	req := struct {
		From   string `json:"from"`
		To     string `json:"to"`
		Amount string `json:"amount"`
		Secret string `json:"secret"`
	}{
		From:   from,
		To:     to,
		Amount: amount,
		Secret: secret,
	}

	data, err := json.Marshal(req)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx/send", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		log.Fatalf("send failed: status %d: %s", resp.StatusCode, msg)
	}

	var receipt struct {
		TranHash    string `json:"transaction_hash"`
		BlockHash   string `json:"block_hash"`
		BlockNumber uint64 `json:"block_number"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Tran: ", receipt.TranHash)
	fmt.Println("Block:", receipt.BlockNumber, receipt.BlockHash)
}
