package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/blockview/internal/adapter/http/dto"
	"github.com/iho/blockview/internal/adapter/http/middleware"
	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/infrastructure/render"
)

var (
	baseURL string
	timeout time.Duration
	viewer  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "blockview-cli",
		Short:         "Blockview CLI tool",
		Long:          `A command line interface for projecting blocks and querying the blockview API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the blockview API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&viewer, "viewer", "", "Viewer's own account number")

	rootCmd.AddCommand(newProjectCmd(), newBlocksCmd(), newHoldingsCmd(), newNetworksCmd())
	return rootCmd
}

func newProjectCmd() *cobra.Command {
	var (
		file        string
		holdings    []string
		format      string
		jqFilter    string
		networkName string
		expand      bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a block from a file without contacting the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			var req dto.RecordBlockRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("parse block: %w", err)
			}

			accounts, err := parseHoldings(viewer, holdings)
			if err != nil {
				return err
			}

			formatter, err := render.New(format)
			if err != nil {
				return err
			}
			if jqFilter != "" {
				if formatter, err = render.NewJQFormatter(jqFilter, formatter); err != nil {
					return err
				}
			}

			view := domain.ProjectBlock(
				blockFromRequest(req),
				domain.NewAccountOwnership(viewer, accounts),
				networkName,
				formatter,
				expand,
			)
			return printJSON(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Block JSON file, - for stdin")
	cmd.Flags().StringArrayVar(&holdings, "holding", nil, "Holding account as NETWORK=ACCOUNT (repeatable)")
	cmd.Flags().StringVar(&format, "format", "json", "Payload format: json or yaml")
	cmd.Flags().StringVar(&jqFilter, "jq", "", "jq filter applied to the payload before rendering")
	cmd.Flags().StringVar(&networkName, "network-name", "", "Network display name used in the action label")
	cmd.Flags().BoolVar(&expand, "expand", true, "Include detail rows")

	return cmd
}

func newBlocksCmd() *cobra.Command {
	blocksCmd := &cobra.Command{
		Use:   "blocks",
		Short: "Block operations",
	}

	var (
		network string
		limit   int
		offset  int
		expand  bool
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List blocks from the viewer's perspective",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if network != "" {
				query.Set("network", network)
			}
			query.Set("limit", strconv.Itoa(limit))
			query.Set("offset", strconv.Itoa(offset))
			query.Set("expand", strconv.FormatBool(expand))

			return callAPI(cmd, http.MethodGet, "/api/v1/blocks?"+query.Encode(), nil)
		},
	}
	listCmd.Flags().StringVar(&network, "network", "", "Filter by network ID")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of blocks")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Number of blocks to skip")
	listCmd.Flags().BoolVar(&expand, "expand", false, "Include detail rows")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one block from the viewer's perspective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/blocks/%s?expand=%t", url.PathEscape(args[0]), expand)
			return callAPI(cmd, http.MethodGet, path, nil)
		},
	}
	getCmd.Flags().BoolVar(&expand, "expand", true, "Include detail rows")

	blocksCmd.AddCommand(listCmd, getCmd)
	return blocksCmd
}

func newHoldingsCmd() *cobra.Command {
	holdingsCmd := &cobra.Command{
		Use:   "holdings",
		Short: "Holding account operations",
	}

	var req dto.RegisterHoldingAccountRequest

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a holding account for the viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return callAPI(cmd, http.MethodPost, "/api/v1/holdings", req)
		},
	}
	addCmd.Flags().StringVar(&req.NetworkID, "network", "", "Network ID")
	addCmd.Flags().StringVar(&req.AccountNumber, "account", "", "Account number held on the network")
	_ = addCmd.MarkFlagRequired("network")
	_ = addCmd.MarkFlagRequired("account")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the viewer's holding accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return callAPI(cmd, http.MethodGet, "/api/v1/holdings", nil)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a holding account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callAPI(cmd, http.MethodDelete, "/api/v1/holdings/"+url.PathEscape(args[0]), nil)
		},
	}

	holdingsCmd.AddCommand(addCmd, listCmd, removeCmd)
	return holdingsCmd
}

func newNetworksCmd() *cobra.Command {
	networksCmd := &cobra.Command{
		Use:   "networks",
		Short: "Network operations",
	}

	networksCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return callAPI(cmd, http.MethodGet, "/api/v1/networks", nil)
		},
	})

	return networksCmd
}

// callAPI sends one request and pretty-prints the JSON response.
func callAPI(cmd *cobra.Command, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), method, strings.TrimRight(baseURL, "/")+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if viewer != "" {
		req.Header.Set(middleware.ViewerHeader, viewer)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status: %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	out := cmd.OutOrStdout()
	if len(bytes.TrimSpace(respBody)) == 0 {
		fmt.Fprintf(out, "OK (status: %d)\n", resp.StatusCode)
		return nil
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, respBody, "", "  "); err != nil {
		_, err = out.Write(respBody)
		return err
	}
	indented.WriteByte('\n')
	_, err = indented.WriteTo(out)
	return err
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(file)
}

// parseHoldings turns NETWORK=ACCOUNT pairs into holding accounts owned by self.
func parseHoldings(self string, values []string) ([]domain.HoldingAccount, error) {
	accounts := make([]domain.HoldingAccount, 0, len(values))
	for _, v := range values {
		network, account, ok := strings.Cut(v, "=")
		if !ok || network == "" || account == "" {
			return nil, fmt.Errorf("invalid holding %q: expected NETWORK=ACCOUNT", v)
		}
		accounts = append(accounts, domain.HoldingAccount{
			OwnerAccountNumber: self,
			NetworkID:          network,
			AccountNumber:      account,
		})
	}
	return accounts, nil
}

func blockFromRequest(req dto.RecordBlockRequest) domain.NetworkBlock {
	in := req.ToUseCaseInput()
	return domain.NetworkBlock{
		ID:             in.ID,
		Amount:         in.Amount,
		TransactionFee: in.TransactionFee,
		Sender:         in.Sender,
		Recipient:      in.Recipient,
		Signature:      in.Signature,
		Payload:        in.Payload,
		Date:           in.Date,
		NetworkID:      in.NetworkID,
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
