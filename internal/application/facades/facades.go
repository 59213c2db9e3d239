// Package facades wires the orchestrators and projections to SQLite. Each
// facade method is one logical operation: writes run on a single
// transaction that commits only when the whole operation succeeds, and any
// unclassified store failure is re-shaped before it reaches the caller.
package facades

import "gymdesk/internal/errs"

// shape guarantees callers only ever observe classified errors.
func shape(err error, msg string) error {
	return errs.Wrap(err, msg)
}
