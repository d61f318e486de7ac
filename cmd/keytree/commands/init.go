package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd(c *cli) *cobra.Command {
	var importPhrase string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or import the stored mnemonic phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if importPhrase != "" {
				if _, err := c.wire.Identity.Import(importPhrase); err != nil {
					return err
				}
				fmt.Fprintln(out, "Mnemonic imported.")
				return nil
			}

			phrase, created, err := c.wire.Identity.LoadOrCreate()
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintln(out, "Mnemonic already stored.")
				return nil
			}
			fmt.Fprintf(out, "Mnemonic created. Write it down:\n%s\n", phrase)
			return nil
		},
	}
	cmd.Flags().StringVar(&importPhrase, "import", "", "store this phrase instead of generating one")
	return cmd
}
