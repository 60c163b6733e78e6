package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type createdWallet struct {
	Address string `json:"address"`
	Secret  string `json:"secret"`
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new wallet funded with the opening balance",
	Run:   createRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func createRun(cmd *cobra.Command, args []string) {
	req := struct {
		Secret string `json:"secret,omitempty"`
	}{
		Secret: secret,
	}

	data, err := json.Marshal(req)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/wallet/create", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var created createdWallet
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Address:", created.Address)
	fmt.Println("Secret: ", created.Secret)
	fmt.Println("Keep the secret safe. It cannot be recovered.")
}
