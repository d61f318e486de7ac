// Package app wires application dependencies for the CLI.
//
// It loads the YAML Config, builds the redacting logger, picks the plain or
// sealed phrase store and constructs the seed and identity services, exposing
// them via the Wire struct for commands to use.
package app
