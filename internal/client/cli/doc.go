// Package cli provides the interactive Genfit terminal client.
//
// It wires configuration, the local session store, the API client, the
// navigator and the per-screen view models behind a REPL. Typical flow: the
// stored session picks the first screen, a background watcher tracks backend
// reachability, and each command renders one screen.
//
// Key commands:
//   - register / login / logout
//   - home, profile, edit, bmi, learn [topic [material]], forum, telehealth
//   - info, terms / privacy links
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
