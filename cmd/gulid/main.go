// Command gulid generates ULIDs and prints them in one of several formats.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lab2439/gulid"
	"github.com/spf13/cobra"
)

const (
	minCount = 1
	maxCount = 10000
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		count  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "gulid",
		Short: "Generate Universally Unique Lexicographically Sortable Identifiers.",
		Long: `gulid generates ULIDs: 128-bit identifiers made of a 48-bit millisecond ` +
			`timestamp and 80 bits of entropy, encoded as 26 Crockford base32 ` +
			`characters that sort identically to the binary value.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), count, format)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to generate (1-10000)")
	cmd.Flags().StringVarP(&format, "format", "f", "ulid", "output format: ulid, uuid or verbose")

	return cmd
}

// run validates the arguments, then generates count identifiers from a
// single generator and prints each in the chosen format. Validation happens
// before any generation so bad arguments never produce partial output.
func run(w io.Writer, count int, format string) error {
	if count < minCount || count > maxCount {
		return fmt.Errorf("count must be between %d and %d, got %d", minCount, maxCount, count)
	}

	print, err := formatter(format)
	if err != nil {
		return err
	}

	gen := gulid.NewGenerator()
	for i := 0; i < count; i++ {
		id, err := gen.New()
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if err := print(w, id); err != nil {
			return err
		}
	}
	return nil
}

// formatter maps a format name to the function that prints one identifier.
func formatter(format string) (func(io.Writer, gulid.ULID) error, error) {
	switch format {
	case "ulid":
		return printULID, nil
	case "uuid":
		return printUUID, nil
	case "verbose":
		return printVerbose, nil
	}
	return nil, fmt.Errorf("unknown format %q (want ulid, uuid or verbose)", format)
}

func printULID(w io.Writer, id gulid.ULID) error {
	_, err := fmt.Fprintln(w, id.String())
	return err
}

func printUUID(w io.Writer, id gulid.ULID) error {
	_, err := fmt.Fprintln(w, id.UUID().String())
	return err
}

func printVerbose(w io.Writer, id gulid.ULID) error {
	_, err := fmt.Fprintf(w, "ULID:    %s\nUUID:    %s\nTime:    %s (%d ms)\nEntropy: % x\n\n",
		id.String(),
		id.UUID().String(),
		id.Timestamp().UTC().Format(time.RFC3339Nano),
		id.Time(),
		id.Entropy(),
	)
	return err
}
