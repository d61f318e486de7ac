package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"keytree/internal/crypto"
	"keytree/internal/services/account"
	"keytree/internal/util/memzero"
)

const (
	demoSignPath = "m/44'/0'/0'/0/0'"
	demoPeerPath = "m/11'/0'/0'/0/0'"
	demoMessage  = "Hello, world!"
)

// demoCmd signs and verifies with a throwaway account, then runs a key
// agreement between two throwaway accounts. Nothing is stored.
func demoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Sign, verify and agree with throwaway accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			alice, err := c.throwawayAccount()
			if err != nil {
				return err
			}
			defer alice.Close()
			bob, err := c.throwawayAccount()
			if err != nil {
				return err
			}
			defer bob.Close()

			sig, err := alice.Sign(demoSignPath, []byte(demoMessage))
			if err != nil {
				return err
			}
			ok, err := alice.Verify(demoSignPath, []byte(demoMessage), sig[:])
			if err != nil {
				return err
			}
			if !ok {
				return errSignatureMismatch
			}
			fmt.Fprintf(out, "Signed %q at %s: %s\n", demoMessage, demoSignPath, crypto.Hex(sig[:]))

			alicePub, err := exchangePublic(alice, demoSignPath)
			if err != nil {
				return err
			}
			bobPub, err := exchangePublic(bob, demoPeerPath)
			if err != nil {
				return err
			}
			aliceShared, err := alice.Agree(demoSignPath, bobPub)
			if err != nil {
				return err
			}
			bobShared, err := bob.Agree(demoPeerPath, alicePub)
			if err != nil {
				return err
			}
			defer memzero.Zero(aliceShared[:], bobShared[:])
			if !bytes.Equal(aliceShared[:], bobShared[:]) {
				return fmt.Errorf("shared secrets differ")
			}
			fmt.Fprintf(out, "Shared secret fingerprint: %s\n", crypto.Fingerprint(aliceShared[:]))
			return nil
		},
	}
}

func (c *cli) throwawayAccount() (*account.Service, error) {
	phrase, err := c.wire.Seeds.NewMnemonic()
	if err != nil {
		return nil, err
	}
	return account.FromMnemonic(c.wire.Seeds, phrase, c.password,
		account.WithNetwork(c.wire.Config.Network),
		account.WithLogger(c.wire.Logger.With("component", "demo")),
	)
}
