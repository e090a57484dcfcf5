package cmd

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pboyd/interpose/game"
	"github.com/pboyd/interpose/symbol"
)

var (
	colorFound   = color.New(color.FgHiGreen).SprintFunc()
	colorMissing = color.New(color.Bold, color.FgHiRed).SprintFunc()
	colorAddr    = color.New(color.FgHiBlue).SprintFunc()
)

func init() {
	rootCmd.AddCommand(symbolsCmd)
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols <libGameLogic.so>",
	Short: "Check that a game library exports every symbol pwnhook uses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := symbol.OpenELF(args[0])
		if err != nil {
			return err
		}
		defer lib.Close()

		log.WithFields(log.Fields{
			"path":    args[0],
			"exports": lib.Len(),
		}).Debug("opened library")

		missing := checkSymbols(cmd.OutOrStdout(), lib, game.Symbols())
		if missing > 0 {
			return fmt.Errorf("%d of %d symbols missing from %s", missing, len(game.Symbols()), args[0])
		}
		return nil
	},
}

// checkSymbols prints one line per name and returns how many didn't
// resolve.
func checkSymbols(w io.Writer, r symbol.Resolver, names []string) int {
	missing := 0
	for _, name := range names {
		addr, err := r.Resolve(name)
		if err != nil {
			missing++
			fmt.Fprintf(w, "%s %s\n", colorMissing("✗"), name)
			log.WithError(err).Debug("lookup failed")
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", colorFound("✓"), colorAddr(fmt.Sprintf("0x%08x", addr)), name)
	}
	return missing
}
