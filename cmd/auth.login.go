/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail string
	loginSSO   bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate to the FinTrack API",
	Long: `Sign in to the FinTrack backend and store the session locally.

Examples:
	# interactive email/password login
	fintrack auth login --email you@company.com

	# browser-based single sign-on
	fintrack auth login --sso

Credentials are stored in the system keychain (with a file fallback) for
subsequent commands.`,
	Run: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) {
	sdk, err := newSdk(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	if loginSSO {
		ba := sdk.NewBrowserAuth()
		loginUrl, err := ba.Initiate()
		if err != nil {
			log.Fatalf("failed to initiate login: %v", err)
		}
		fmt.Printf("Please open the following URL in your browser to complete login:\n%s\n", loginUrl)

		if _, err := ba.Complete(cmd.Context()); err != nil {
			log.Fatalf("failed to complete login: %v", err)
		}
	} else {
		email := loginEmail
		if email == "" {
			email = promptLine("Email: ")
		}
		password := promptPassword("Password: ")

		if _, err := sdk.Login(cmd.Context(), email, password); err != nil {
			exitIfSdkError(err)
		}
	}

	if claims, err := sdk.AccessClaims(); err == nil {
		expStr := "unknown"
		if !claims.ExpiresAt.IsZero() {
			expStr = claims.ExpiresAt.Format(time.RFC3339)
		}
		fmt.Printf("Logged in as: %s (%s)\n", claims.Email, claims.Role)
		fmt.Printf("Token expires: %s\n", expStr)
	} else {
		log.Printf("warning: failed to parse token claims: %v", err)
	}

	fmt.Println("Session saved")
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	return strings.TrimSpace(line)
}

func promptPassword(prompt string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// Piped input, e.g. in scripts.
		return promptLine(prompt)
	}
	fmt.Print(prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		log.Fatalf("failed to read password: %v", err)
	}
	return string(pw)
}

func init() {
	authCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().BoolVar(&loginSSO, "sso", false, "Use the browser-based single sign-on flow")
}
