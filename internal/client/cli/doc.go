// Package cli provides the interactive accounts command-line client.
//
// It wires configuration, the gRPC accounts client and a REPL. Commands:
//
//   - signup             create an account (prompts for details and password)
//   - signin             verify a password for an email in a workspace
//   - find [email]       show the account with email in the workspace
//   - delete <id|email>  remove an account by numeric id or by email
//   - ping               check server health
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// stdin is closed.
package cli
