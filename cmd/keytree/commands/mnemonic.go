package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mnemonicCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Print a fresh mnemonic phrase without storing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := c.wire.Seeds.NewMnemonic()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), phrase)
			return nil
		},
	}
}
