// Package cli provides the interactive nutritrack terminal client.
//
// It wires configuration, the local session store, the API client and the
// client services, and runs a REPL. The REPL is the only place that reads
// the current session; it does so once per command and hands the session
// to the services.
//
// Commands:
//   - register / login / logout
//   - profile
//   - stats [YYYY-MM-DD]
//   - addmeal / addworkout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
