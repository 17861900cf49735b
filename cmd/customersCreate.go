package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	createCustName    string
	createCustEmail   string
	createCustPhone   string
	createCustAddress string
	createCustVAT     string
)

var customersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a customer to the register",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		c, err := sdk.Customers.Create(cmd.Context(), fsdk.CreateCustomerRequest{
			Name:      createCustName,
			Email:     createCustEmail,
			Phone:     createCustPhone,
			Address:   createCustAddress,
			VATNumber: createCustVAT,
		})
		if err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("✓ Customer %s created (id %d)\n", c.Name, c.ID)
	},
}

func init() {
	customersCmd.AddCommand(customersCreateCmd)
	customersCreateCmd.Flags().StringVar(&createCustName, "name", "", "Customer name (required)")
	customersCreateCmd.Flags().StringVar(&createCustEmail, "email", "", "Billing email")
	customersCreateCmd.Flags().StringVar(&createCustPhone, "phone", "", "Phone number")
	customersCreateCmd.Flags().StringVar(&createCustAddress, "address", "", "Postal address")
	customersCreateCmd.Flags().StringVar(&createCustVAT, "vat-number", "", "VAT registration number")
	customersCreateCmd.MarkFlagRequired("name")
}
