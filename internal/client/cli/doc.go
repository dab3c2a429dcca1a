// Package cli provides the interactive storeadmin command-line client.
//
// It wires configuration, the resource registry, the HTTP backend client,
// the local write journal and one screen per resource behind a small REPL.
// Typical flow: open the default resource, pick a query mode, narrow the
// result locally, then add, edit or delete records through prompted forms.
//
// Key features:
//   - Switch between resources (members, orders, products, or any loaded
//     from a descriptor file)
//   - Query modes with deferred parameters (set, then search)
//   - Local search term and category filter that never hit the backend
//   - Prompted create/edit forms that keep the draft after a rejected write
//   - Confirmed delete
//   - Local history of write attempts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled. See App and runREPL for details.
package cli
