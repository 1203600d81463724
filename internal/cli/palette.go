// internal/cli/palette.go
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go-skewrect/pkg/palette"
)

var (
	styleName = lipgloss.NewStyle().Width(28)
	styleHex  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (c *CLI) paletteCommand() *cobra.Command {
	var f sceneFlags

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the ink swatches scenes sample from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			swatches, err := f.loadSwatches()
			if err != nil {
				return err
			}
			return printSwatches(cmd.OutOrStdout(), swatches)
		},
	}
	f.registerSwatches(cmd)

	return cmd
}

// printSwatches writes one line per swatch: a color chip, the name and the hex value.
func printSwatches(w io.Writer, swatches []palette.Swatch) error {
	for _, s := range swatches {
		c, err := s.Color()
		if err != nil {
			return err
		}
		hex := palette.Hex(c)
		chip := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		if _, err := fmt.Fprintf(w, "%s %s %s\n", chip, styleName.Render(s.Name), styleHex.Render(hex)); err != nil {
			return err
		}
	}
	return nil
}
