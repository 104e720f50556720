package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gotransfer-cli",
		Short: "GoTransfer CLI tool",
		Long:  `A command line interface for interacting with the GoTransfer API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoTransfer API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(holdersCmd())
	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(totalCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func transferCmd() *cobra.Command {
	var currency, idempotencyKey string

	cmd := &cobra.Command{
		Use:   "transfer <payer-account-id> <payee-account-id> <amount>",
		Short: "Move funds between two accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"payer_account_id": args[0],
				"payee_account_id": args[1],
				"amount":           args[2],
			}
			if currency != "" {
				payload["currency"] = currency
			}

			body, err := json.Marshal(payload)
			if err != nil {
				return err
			}

			req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/transfers", bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			if idempotencyKey != "" {
				req.Header.Set("Idempotency-Key", idempotencyKey)
			}

			return doRequest(req)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "Transfer currency (defaults to the payer account's currency)")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key for safe retries")

	return cmd
}

func holdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holders [id]",
		Short: "List holders or show one holder with their accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := baseURL + "/api/v1/holders"
			if len(args) == 1 {
				url += "/" + args[0]
			}

			return get(url)
		},
	}
}

func accountCmd() *cobra.Command {
	var entries bool

	cmd := &cobra.Command{
		Use:   "account <account-id>",
		Short: "Show an account and its balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := baseURL + "/api/v1/accounts/" + args[0]
			if entries {
				url += "/entries"
			}

			return get(url)
		},
	}

	cmd.Flags().BoolVar(&entries, "entries", false, "Show the account's postings instead of its summary")

	return cmd
}

func totalCmd() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show the summed balance of every account in one currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return get(baseURL + "/api/v1/balance?currency=" + currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "USD", "Currency to aggregate")

	return cmd
}

func get(url string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	return doRequest(req)
}

func doRequest(req *http.Request) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(parsed)

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}

	fmt.Println(string(out))
}
