// internal/cli/profile.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) profileCommand() *cobra.Command {
	var f sceneFlags

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the effective run profile as TOML",
		Long: `Print the profile a run would use: the variant preset with the --profile
file applied. The output is a valid profile file itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.resolveProfile()
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				loggerFromContext(cmd.Context()).Warn("profile does not validate", "err", err)
			}
			doc, err := p.Encode()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		},
	}
	cmd.Flags().StringVar(&f.variant, "variant", "animated", "sketch variant: animated, static")
	cmd.Flags().StringVar(&f.profile, "profile", "", "TOML file overriding profile fields")

	return cmd
}
