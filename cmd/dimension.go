package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"lumber-inventory/fraction"

	"github.com/spf13/cobra"
)

var dimensionCmd = &cobra.Command{
	Use:   "dimension",
	Short: "Convert between dimension strings and decimal inches",
}

var dimensionParseCmd = &cobra.Command{
	Use:     "parse <text>",
	Short:   "Convert \"48 1/2\", \"3/4\" or \"48.5\" to decimal inches",
	Example: "  lumber dimension parse \"48 1/2\"",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := fraction.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
		return nil
	},
}

var dimensionFormatCmd = &cobra.Command{
	Use:   "format <inches>",
	Short: "Render decimal inches as a whole number and sixteenths",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), fraction.Format(v))
		return nil
	},
}

func init() {
	dimensionCmd.AddCommand(dimensionParseCmd)
	dimensionCmd.AddCommand(dimensionFormatCmd)
}
