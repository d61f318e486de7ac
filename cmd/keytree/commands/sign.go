package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"keytree/internal/crypto"
)

var errSignatureMismatch = errors.New("signature does not verify")

func signCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with the key at --path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := c.openAccount()
			if err != nil {
				return err
			}
			defer acct.Close()

			sig, err := acct.Sign(c.path, []byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(sig[:]))
			return nil
		},
	}
}

func verifyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <message> <signature-hex>",
		Short: "Verify a signature against the key at --path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := crypto.DecodeHex(args[1], 0)
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			acct, err := c.openAccount()
			if err != nil {
				return err
			}
			defer acct.Close()

			ok, err := acct.Verify(c.path, []byte(args[0]), sig)
			if err != nil {
				return err
			}
			if !ok {
				return errSignatureMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature valid.")
			return nil
		},
	}
}
