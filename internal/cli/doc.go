// Package cli parses command-line arguments and dispatches subcommands.
//
// Each subcommand owns its flag set; Run routes by command name and
// returns errors to the caller rather than exiting, so main controls
// the process exit code. All diagnostic logging goes to stderr; stdout
// carries only command output.
package cli
