package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var statusRemote bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authentication status",
	Long: `Show whether a session is stored for the configured base URL and when
its access token expires. Pass --remote to also verify the session against
the server.`,
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		token := sdk.CurrentAccessToken()
		if token == "" {
			fmt.Println("Not logged in. Run 'fintrack auth login' to authenticate.")
			return
		}

		claims, err := sdk.AccessClaims()
		if err != nil {
			fmt.Printf("Stored token could not be parsed: %v\n", err)
			fmt.Println("Run 'fintrack auth login' to obtain a fresh session.")
			return
		}

		fmt.Printf("Logged in as: %s (%s)\n", claims.Email, claims.Role)
		if !claims.ExpiresAt.IsZero() {
			fmt.Printf("Token expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
		}
		if fsdk.TokenExpired(token, 0) {
			fmt.Println("Access token is expired; the next API call will refresh it.")
		}

		if statusRemote {
			user, err := sdk.CurrentUser(cmd.Context())
			if err != nil {
				exitIfSdkError(err)
			}
			fmt.Printf("Server session OK: %s (id %d)\n", user.Email, user.ID)
		}
	},
}

func init() {
	authCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusRemote, "remote", false, "Verify the session against the server")
}
