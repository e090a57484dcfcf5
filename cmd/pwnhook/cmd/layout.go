package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pboyd/interpose/game"
	"github.com/pboyd/interpose/layout"
)

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().BoolP("padding", "p", false, "include padding")
}

var layoutCmd = &cobra.Command{
	Use:   "layout [TYPE]",
	Short: "Print the field layout of the overlaid host types",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		padding, _ := cmd.Flags().GetBool("padding")

		layouts := game.Layouts()
		if len(args) > 0 {
			l, err := findLayout(layouts, args[0])
			if err != nil {
				return err
			}
			layouts = []*layout.Layout{l}
		}

		for i, l := range layouts {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printLayout(cmd.OutOrStdout(), l, padding)
		}
		return nil
	},
}

func findLayout(layouts []*layout.Layout, name string) (*layout.Layout, error) {
	var names []string
	for _, l := range layouts {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
		names = append(names, l.Name)
	}
	return nil, fmt.Errorf("unknown type %q (have %s)", name, strings.Join(names, ", "))
}

func printLayout(w io.Writer, l *layout.Layout, padding bool) {
	fmt.Fprintf(w, "%s (%#x bytes)\n", colorAddr(l.Name), l.Size)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range l.Fields {
		if f.Kind == layout.KindPadding && !padding {
			continue
		}
		fmt.Fprintf(tw, "  0x%04x\t%d\t%s\t%s\n", f.Offset, f.Size, f.Kind, f.Name)
	}
	tw.Flush()
}
