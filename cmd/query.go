package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oskarkook/ctxrank/buffer"
	"github.com/oskarkook/ctxrank/collect"
	"github.com/oskarkook/ctxrank/config"
	"github.com/oskarkook/ctxrank/embedding"
	"github.com/oskarkook/ctxrank/finder"
	"github.com/oskarkook/ctxrank/types"
)

var (
	queryActive    string
	querySelection string
	querySingle    bool
)

var queryCmd = &cobra.Command{
	Use:   "query [prompt] [dir]",
	Short: "Rank source files under a directory by relatedness to a prompt",
	Long: `Treat every source file under a directory as a listed buffer, build the
candidate set (full text for the active buffer, outlines for the rest),
embed candidates and prompt, and print the most related files with their
similarity scores.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  queryMain,
}

func init() {
	queryCmd.Flags().StringVarP(&queryActive, "active", "a", "", "Path of the active buffer (full content, never outlined)")
	queryCmd.Flags().StringVarP(&querySelection, "selection", "s", "", "Selected text to embed alongside the prompt")
	queryCmd.Flags().BoolVar(&querySingle, "single", false, "Consider only the active buffer")
	rootCmd.AddCommand(queryCmd)
}

func queryMain(cmd *cobra.Command, args []string) {
	prompt := args[0]
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	apiKey := config.ResolveAPIKey(mustString(cmd, "api-key"))
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "OpenAI API key not provided. Use --api-key flag or set OPENAI_API_KEY environment variable")
		os.Exit(1)
	}

	source, err := buffer.NewDirSource(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading buffers: %v\n", err)
		os.Exit(1)
	}

	var active buffer.Buffer
	if queryActive != "" {
		active, err = resolveActive(source, queryActive)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading active buffer: %v\n", err)
			os.Exit(1)
		}
	}
	if querySingle && active == nil {
		fmt.Fprintln(os.Stderr, "--single requires --active")
		os.Exit(1)
	}

	var embedder embedding.Embedder = embedding.NewOpenAIClient(apiKey, cfg.Model)
	if cfg.CacheSize > 0 {
		cached, err := embedding.NewCached(embedder, cfg.CacheSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting up embedding cache: %v\n", err)
			os.Exit(1)
		}
		embedder = cached
	}

	f := finder.New(collect.New(source), embedder)
	if cfg.TopN > 0 {
		f.TopN = cfg.TopN
	}

	scope := types.ScopeBuffers
	if querySingle {
		scope = types.ScopeBuffer
	}

	results, err := f.Find(context.Background(), finder.Request{
		Scope:     scope,
		Prompt:    prompt,
		Selection: querySelection,
		Active:    active,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding related context: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No related context found.")
		return
	}

	fmt.Printf("Context related to %q:\n\n", prompt)
	for i, result := range results {
		fmt.Printf("%2d. %s (%s)\n", i+1, result.Item.Filename, result.Item.Filetype)
		fmt.Printf("    Similarity: %.4f\n", result.Score)
	}
}

// resolveActive finds the active buffer among the listed ones, loading it
// directly when it lives outside the scanned directory.
func resolveActive(source *buffer.DirSource, path string) (buffer.Buffer, error) {
	if buf, ok := source.Lookup(path); ok {
		return buf, nil
	}
	return buffer.ReadFile(path)
}

func mustString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}
