package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	customerListSearch string
	customerListSkip   int
	customerListLimit  int
)

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers, optionally filtered by a search term",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		customers, err := sdk.Customers.List(cmd.Context(), fsdk.CustomerListOptions{
			ListOptions: fsdk.ListOptions{Skip: customerListSkip, Limit: customerListLimit},
			Search:      customerListSearch,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(customers) == 0 {
			fmt.Println("No customers found.")
			return
		}

		fmt.Printf("%-6s %-28s %-28s %12s\n", "ID", "NAME", "EMAIL", "BALANCE")
		for _, c := range customers {
			fmt.Printf("%-6d %-28.28s %-28.28s %12s\n", c.ID, c.Name, c.Email, money(c.Balance))
		}
	},
}

func init() {
	customersCmd.AddCommand(customersListCmd)
	customersListCmd.Flags().StringVar(&customerListSearch, "search", "", "Filter by name or email")
	customersListCmd.Flags().IntVar(&customerListSkip, "skip", 0, "Pagination offset")
	customersListCmd.Flags().IntVar(&customerListLimit, "limit", 0, "Maximum number of results")
}
