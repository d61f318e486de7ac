package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keytree/internal/app"
	"keytree/internal/domain"
	"keytree/internal/services/account"
)

// cli holds flag values and the wired app for one command invocation.
type cli struct {
	home        string
	configPath  string
	password    string
	storeSecret string
	path        string
	network     string
	logLevel    string

	wire *app.Wire
}

// NewRootCommand builds the keytree command tree.
func NewRootCommand() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "keytree",
		Short:         "Hierarchical deterministic signing and key-exchange keys from one mnemonic",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.home, "home", "", "config dir (default ~/.keytree)")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&c.password, "password", "p", "", "BIP39 passphrase mixed into the seed")
	root.PersistentFlags().StringVar(&c.storeSecret, "store-secret", "", "secret sealing the phrase file (enables encryption)")
	root.PersistentFlags().StringVar(&c.path, "path", "", "derivation path (default from config, m/44'/0'/0'/0/0')")
	root.PersistentFlags().StringVar(&c.network, "network", "", "extended key network: mainnet | testnet")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug | info | warn | error")

	root.AddCommand(
		mnemonicCmd(c),
		initCmd(c),
		pubkeyCmd(c),
		signCmd(c),
		verifyCmd(c),
		exchangeKeyCmd(c),
		agreeCmd(c),
		demoCmd(c),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.home = filepath.Join(dir, ".keytree")
	}
	if err := os.MkdirAll(c.home, 0o700); err != nil {
		return err
	}
	if c.configPath == "" {
		c.configPath = filepath.Join(c.home, "config.yaml")
	} else if _, err := os.Stat(c.configPath); err != nil {
		// Only the implicit <home>/config.yaml may be absent.
		return fmt.Errorf("config: %w", err)
	}

	cfg, err := app.LoadConfig(c.configPath, c.home)
	if err != nil {
		return err
	}
	if c.storeSecret != "" {
		cfg.EncryptPhrase = true
	}
	if c.network != "" {
		cfg.Network = domain.Network(c.network)
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.path == "" {
		c.path = cfg.DefaultPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, err := app.NewWire(cfg, app.Options{
		StoreSecret: c.storeSecret,
		LogOutput:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	c.wire = w
	return nil
}

func (c *cli) openAccount() (*account.Service, error) {
	return c.wire.OpenAccount(c.password)
}
