package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oskarkook/ctxrank/config"
	"github.com/oskarkook/ctxrank/logger"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ctxrank",
	Short: "ctxrank selects the source files most related to a query",
	Long: `ctxrank compresses source files into structural outlines, embeds them
together with a query, and ranks them by cosine similarity, producing a
bounded context window for a downstream language assistant.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.Debug = true
		}
		logger.Init(cfg.Debug)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "OpenAI API key (can also be set via OPENAI_API_KEY env var)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}
