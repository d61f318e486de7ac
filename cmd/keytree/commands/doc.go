// Package commands defines the keytree CLI and wires dependencies for subcommands.
//
// Commands
//
//   - mnemonic      Print a fresh phrase without storing it
//   - init          Create or import the stored phrase
//   - pubkey        Print signing, extended and exchange public keys
//   - sign          Sign a message
//   - verify        Verify a signature
//   - exchange-key  Print the X25519 public key
//   - agree         Compute a shared secret with a peer
//   - demo          Sign, verify and agree with throwaway accounts
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the app.Wire before any subcommand runs. Every key-using command opens an
// account from the stored phrase and closes it, wiping the seed, on return.
package commands
