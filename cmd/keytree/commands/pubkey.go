package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keytree/internal/crypto"
)

func pubkeyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public keys at --path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := c.openAccount()
			if err != nil {
				return err
			}
			defer acct.Close()

			signing, err := acct.SigningKey(c.path)
			if err != nil {
				return err
			}
			xpub, err := acct.ExtendedPublicKey(c.path)
			if err != nil {
				return err
			}
			exch, err := exchangePublic(acct, c.path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path:         %s\n", c.path)
			fmt.Fprintf(out, "Signing key:  %s\n", crypto.Hex(signing[:]))
			fmt.Fprintf(out, "Extended key: %s\n", xpub)
			fmt.Fprintf(out, "Exchange key: %s\n", crypto.Hex(exch[:]))
			fmt.Fprintf(out, "Fingerprint:  %s\n", crypto.FingerprintX25519(exch))
			return nil
		},
	}
}
