package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/litgrep/internal/cli"
)

var cfg cli.Config

func main() {
	var colorFlag string

	rootCmd := &cobra.Command{
		Use:   "litgrep PATTERN [PATH...]",
		Short: "litgrep searches files for a pattern and highlights matches",
		Long: `litgrep scans inputs line by line for a literal or regex pattern and
prints each matching line with the matched text highlighted.

With no paths, litgrep reads from stdin. With -r, directories are searched
recursively, honoring .gitignore files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			cfg.Paths = args[1:]

			mode, err := cli.ParseColorMode(colorFlag)
			if err != nil {
				return err
			}
			cfg.Color = mode

			if err := cfg.Validate(); err != nil {
				return err
			}

			os.Exit(cli.Run(cfg))
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&cfg.Fixed, "fixed-strings", "F", false, "treat the pattern as a literal string")
	flags.BoolVarP(&cfg.PCRE, "pcre", "P", false, "use PCRE2 regex semantics")
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "search directories recursively")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", false, "prefix matching lines with line numbers")
	flags.BoolVarP(&cfg.CountOnly, "count", "c", false, "print only the count of matching lines")
	flags.BoolVarP(&cfg.FileNamesOnly, "files-with-matches", "l", false, "print only names of files with matches")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "emit matches as JSON lines")
	flags.StringVar(&colorFlag, "color", "auto", "when to use color: auto, always, never")
	flags.StringVar(&cfg.MatchColor, "match-color", "bold-red", "highlight color for matched text")
	flags.IntVarP(&cfg.Workers, "workers", "j", 0, "number of parallel workers (0 = auto)")
	flags.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not honor .gitignore files")
	flags.BoolVar(&cfg.Hidden, "hidden", false, "search hidden files and directories")
	flags.Int64Var(&cfg.MmapThreshold, "mmap-threshold", 1<<20, "file size at which mmap replaces read")

	// Prepend rc-file flags so the command line can override them.
	args := append(cli.LoadConfigArgs(), os.Args[1:]...)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "litgrep:", err)
		os.Exit(2)
	}
}
