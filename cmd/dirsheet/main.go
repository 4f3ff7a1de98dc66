package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dirsheet/pkg"
	"dirsheet/pkg/sheet"
)

var (
	maxLines     int
	separator    string
	sortByName   bool
	verbose      bool
	colorMode    *enumFlag
	outputFormat *enumFlag
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code
func run(args []string, stdout, stderr io.Writer, scanOptions ...pkg.ScanOption) int {
	rootCmd := newRootCommand(scanOptions...)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand(scanOptions ...pkg.ScanOption) *cobra.Command {
	colorMode = newEnumFlag(colorAuto, colorAuto, colorAlways, colorNever)
	outputFormat = newEnumFlag(formatTable, formatTable, formatTSV, formatJSON, formatYAML)

	var rootCmd = &cobra.Command{
		Use:   "dirsheet <directory>",
		Short: "Print the files of a directory as spreadsheet cells",
		Long: `dirsheet prints every regular file of a directory as one row of a
column-aligned table: the file name first, followed by the leading lines of
the file. Columns are padded to the widest cell so the table lines up in a
terminal.

Examples:
  # First line of every file
  dirsheet ./cells

  # Up to ten lines per file, colored, sorted by name
  dirsheet ./cells --lines 10 --color always --sort

  # Tab separated for other tools
  dirsheet ./cells -o tsv

  # Structured output
  dirsheet ./cells -o yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheet(cmd, args, scanOptions)
		},
	}

	// Add flags
	rootCmd.Flags().IntVarP(&maxLines, "lines", "l", sheet.DefaultMaxLines,
		fmt.Sprintf("Number of leading lines shown per file (1-%d)", sheet.MaxLinesLimit))
	rootCmd.Flags().StringVar(&separator, "separator", sheet.DefaultSeparator, "Text placed after the name and between content columns")
	rootCmd.Flags().BoolVar(&sortByName, "sort", false, "Sort rows by file name instead of directory order")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Print debug information to stderr")

	// Output flags
	rootCmd.Flags().Var(colorMode, "color", "Color table cells ("+colorMode.Values()+")")
	rootCmd.Flags().VarP(outputFormat, "output", "o", "Output format ("+outputFormat.Values()+")")

	// Validate flag combinations
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		structured := currentOutputFormat() != formatTable
		if err := mutuallyExclusive(colorMode.String() == colorAlways, "--color=always", structured, "--output="+currentOutputFormat()); err != nil {
			return err
		}
		if structured && cmd.Flags().Changed("separator") {
			return fmt.Errorf("--separator only applies to table output")
		}
		return nil
	}

	return rootCmd
}

func runSheet(cmd *cobra.Command, args []string, scanOptions []pkg.ScanOption) error {
	dir := args[0]
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	logger := pkg.NewTextLogger(stderr, verbose).WithColor(resolveColor(colorMode.String(), stderr))

	options := []pkg.ScanOption{
		pkg.WithMaxLines(maxLines),
		pkg.WithSortByName(sortByName),
		pkg.WithLogger(logger),
	}
	scanner, err := pkg.NewScanner(append(options, scanOptions...)...)
	if err != nil {
		return err
	}

	// Build the renderer before scanning so option errors come first
	useColor := resolveColor(colorMode.String(), stdout)
	renderer, err := newRenderer(useColor)
	if err != nil {
		return err
	}

	logger.Log(pkg.LevelDebug, fmt.Sprintf("Scanning %s (lines=%d, sort=%t, color=%t, output=%s)",
		dir, maxLines, sortByName, useColor, currentOutputFormat()), nil)

	result, err := scanner.Scan(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if skipped := result.SkippedError(); skipped != nil {
		logger.Log(pkg.LevelDebug, fmt.Sprintf("Skipped entries: %v", skipped), nil)
	}

	return displaySheet(stdout, result, renderer)
}

func newRenderer(useColor bool) (*sheet.Renderer, error) {
	var style sheet.Style = sheet.Plain{}
	if useColor {
		style = sheet.NewStyled(sheet.DefaultPalette().Forced())
	}

	return pkg.NewRendererWithOptions(maxLines,
		pkg.WithStyle(style),
		pkg.WithSeparator(separator),
	)
}
