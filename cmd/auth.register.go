package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	registerEmail   string
	registerName    string
	registerCompany string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a FinTrack account and sign in",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		email := registerEmail
		if email == "" {
			email = promptLine("Email: ")
		}
		name := registerName
		if name == "" {
			name = promptLine("Full name: ")
		}
		password := promptPassword("Password: ")
		if confirm := promptPassword("Confirm password: "); confirm != password {
			log.Fatalf("passwords do not match")
		}

		_, err = sdk.Register(cmd.Context(), fsdk.RegisterRequest{
			Email:       email,
			Password:    password,
			FullName:    name,
			CompanyName: registerCompany,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Account created for %s\n", email)
		fmt.Println("Session saved")
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerCompany, "company", "", "Company name")
}
