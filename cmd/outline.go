package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oskarkook/ctxrank/buffer"
	"github.com/oskarkook/ctxrank/outline"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Print the structural outline of a source file",
	Long: `Compress a source file into its definition skeleton: the lines that
start a module, class or method definition, with elision markers for the
omitted regions. Files in a language without a registered structural query
have no outline.`,
	Args: cobra.ExactArgs(1),
	Run:  outlineMain,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

func outlineMain(cmd *cobra.Command, args []string) {
	buf, err := buffer.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	skeleton, ok := outline.Build(buf)
	if !ok {
		fmt.Fprintf(os.Stderr, "No outline available for %s (filetype %q)\n", buf.Name(), buf.Filetype())
		os.Exit(1)
	}

	fmt.Println(skeleton)
}
