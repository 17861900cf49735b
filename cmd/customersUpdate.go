package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	updateCustName    string
	updateCustEmail   string
	updateCustPhone   string
	updateCustAddress string
	updateCustVAT     string
)

var customersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update customer fields; only the given flags change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		// Only fields whose flag was set end up in the request, so
		// clearing a value with an empty string still works.
		var req fsdk.UpdateCustomerRequest
		changed := false
		if cmd.Flags().Changed("name") {
			req.Name = &updateCustName
			changed = true
		}
		if cmd.Flags().Changed("email") {
			req.Email = &updateCustEmail
			changed = true
		}
		if cmd.Flags().Changed("phone") {
			req.Phone = &updateCustPhone
			changed = true
		}
		if cmd.Flags().Changed("address") {
			req.Address = &updateCustAddress
			changed = true
		}
		if cmd.Flags().Changed("vat-number") {
			req.VATNumber = &updateCustVAT
			changed = true
		}
		if !changed {
			log.Fatalf("nothing to update: pass at least one of --name, --email, --phone, --address, --vat-number")
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		c, err := sdk.Customers.Update(cmd.Context(), id, req)
		if err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("✓ Customer %s updated\n", c.Name)
	},
}

func init() {
	customersCmd.AddCommand(customersUpdateCmd)
	customersUpdateCmd.Flags().StringVar(&updateCustName, "name", "", "Customer name")
	customersUpdateCmd.Flags().StringVar(&updateCustEmail, "email", "", "Billing email")
	customersUpdateCmd.Flags().StringVar(&updateCustPhone, "phone", "", "Phone number")
	customersUpdateCmd.Flags().StringVar(&updateCustAddress, "address", "", "Postal address")
	customersUpdateCmd.Flags().StringVar(&updateCustVAT, "vat-number", "", "VAT registration number")
}
