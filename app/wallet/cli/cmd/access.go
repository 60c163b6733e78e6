package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Print the address for the wallet controlled by the secret",
	Run:   accessRun,
}

func init() {
	rootCmd.AddCommand(accessCmd)
}

func accessRun(cmd *cobra.Command, args []string) {
	if secret == "" {
		log.Fatal("a secret is required, use --secret")
	}

	req := struct {
		Secret string `json:"secret"`
	}{
		Secret: secret,
	}

	data, err := json.Marshal(req)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/wallet/access", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("wallet not found: status %d", resp.StatusCode)
	}

	var accessed struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&accessed); err != nil {
		log.Fatal(err)
	}

	fmt.Println(accessed.Address)
}
