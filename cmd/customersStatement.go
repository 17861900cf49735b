package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	statementFrom string
	statementTo   string
)

var customersStatementCmd = &cobra.Command{
	Use:   "statement <id>",
	Short: "Show a customer's account statement for a date range",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		from, err := parseDateFlag("from", statementFrom)
		if err != nil {
			log.Fatalf("%v", err)
		}
		to, err := parseDateFlag("to", statementTo)
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		st, err := sdk.Customers.Statement(cmd.Context(), id, from, to)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Statement for %s (%s to %s)\n",
			st.Customer.Name, formatDate(st.FromDate), formatDate(st.ToDate))
		fmt.Printf("Opening balance: %s\n\n", money(st.OpeningBalance))

		fmt.Printf("%-12s %-10s %-20s %12s %12s\n", "DATE", "TYPE", "REFERENCE", "AMOUNT", "BALANCE")
		for _, line := range st.Lines {
			fmt.Printf("%-12s %-10s %-20.20s %12s %12s\n",
				formatDate(line.Date), line.Kind, line.Reference,
				money(line.Amount), money(line.Balance))
		}

		fmt.Printf("\nClosing balance: %s\n", money(st.ClosingBalance))
	},
}

func init() {
	customersCmd.AddCommand(customersStatementCmd)
	customersStatementCmd.Flags().StringVar(&statementFrom, "from", "", "Range start YYYY-MM-DD")
	customersStatementCmd.Flags().StringVar(&statementTo, "to", "", "Range end YYYY-MM-DD")
}
