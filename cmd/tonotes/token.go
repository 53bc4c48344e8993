package main

import (
	"fmt"
	"os"
	"time"

	"tonotes/services"
	"tonotes/utils"

	"github.com/spf13/cobra"
)

var (
	tokenUser  string
	tokenEmail string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development ID token",
	Long: `Token signs an ID token with JWT_SECRET_KEY and JWT_ISSUER so the API can be
exercised locally without an external identity provider.`,
	Run: func(cmd *cobra.Command, args []string) {
		secret := os.Getenv("JWT_SECRET_KEY")
		issuer := utils.GetEnvAsString("JWT_ISSUER", "toNotes")

		token, err := services.IssueToken(secret, issuer, tokenUser, tokenEmail, tokenTTL, time.Now())
		if err != nil {
			fatal("Error issuing token", err)
		}
		fmt.Println(token)
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "User id to put in the token")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email to put in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}
