package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var customersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one customer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		c, err := sdk.Customers.Get(cmd.Context(), id)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Customer %s (id %d)\n", c.Name, c.ID)
		if c.Email != "" {
			fmt.Printf("Email: %s\n", c.Email)
		}
		if c.Phone != "" {
			fmt.Printf("Phone: %s\n", c.Phone)
		}
		if c.Address != "" {
			fmt.Printf("Address: %s\n", c.Address)
		}
		if c.VATNumber != "" {
			fmt.Printf("VAT number: %s\n", c.VATNumber)
		}
		fmt.Printf("Balance: %s\n", money(c.Balance))
		fmt.Printf("Since: %s\n", formatTime(c.CreatedAt))
	},
}

func init() {
	customersCmd.AddCommand(customersShowCmd)
}
