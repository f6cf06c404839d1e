// Command chat is the terminal chat client for the Text-to-SQL service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"texttosql/client"
	"texttosql/config"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:           "chat",
	Short:         "Chat with the Text-to-SQL service",
	Long:          `Interactive chat client that forwards natural-language questions to the Text-to-SQL service and renders the generated SQL and results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := apiURL
		if url == "" {
			url = config.GetConfig().APIBaseURL
		}

		session := client.NewSession(client.NewAPI(url))
		return session.Run(context.Background())
	},
}

func main() {
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "Base URL of the Text-to-SQL service (defaults to API_URL env or http://localhost:8000)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
