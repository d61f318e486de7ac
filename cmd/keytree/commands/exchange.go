package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keytree/internal/crypto"
	"keytree/internal/domain"
	"keytree/internal/services/account"
	"keytree/internal/services/exchange"
	"keytree/internal/util/memzero"
)

func exchangeKeyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "exchange-key",
		Short: "Print the X25519 public key at --path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := c.openAccount()
			if err != nil {
				return err
			}
			defer acct.Close()

			pub, err := exchangePublic(acct, c.path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(pub[:]))
			return nil
		},
	}
}

// exchangePublic derives the exchange pair at path and keeps only its public
// half. The CLI never prints or holds the private half.
func exchangePublic(acct *account.Service, path string) (domain.X25519Public, error) {
	pair, err := acct.ExchangeKey(path)
	if err != nil {
		return domain.X25519Public{}, err
	}
	return publicOnly(&pair), nil
}

// publicOnly wipes the private half of pair and returns the public half.
func publicOnly(pair *domain.ExchangeKeyPair) domain.X25519Public {
	memzero.Zero(pair.Private[:])
	return pair.Public
}

func agreeCmd(c *cli) *cobra.Command {
	var (
		info   string
		length int
	)
	cmd := &cobra.Command{
		Use:   "agree <peer-public-hex>",
		Short: "Compute the shared secret with a peer X25519 public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := crypto.DecodeHex(args[0], len(domain.X25519Public{}))
			if err != nil {
				return fmt.Errorf("peer key: %w", err)
			}
			peer := domain.X25519Public(raw)

			acct, err := c.openAccount()
			if err != nil {
				return err
			}
			defer acct.Close()

			shared, err := acct.Agree(c.path, peer)
			if err != nil {
				return err
			}
			defer memzero.Zero(shared[:])

			out := shared[:]
			if info != "" {
				key, err := exchange.SessionKey(shared, []byte(info), length)
				if err != nil {
					return err
				}
				defer memzero.Zero(key)
				out = key
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&info, "info", "", "HKDF context label; prints a derived key instead of the raw secret")
	cmd.Flags().IntVar(&length, "length", 32, "derived key length in bytes (with --info)")
	return cmd
}
