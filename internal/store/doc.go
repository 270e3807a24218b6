// Package store provides SQLite-backed durable storage for stock records.
//
// One Store owns one shared database handle and one write mutex. All
// transactional write sequences are strictly serialized by that mutex:
// no two transactions' statements can interleave, and commit order equals
// lock-acquisition order (mutual exclusion only - fairness is whatever
// sync.Mutex provides). Read-only lookups bypass the mutex entirely; WAL
// journaling lets them proceed during an in-flight write and guarantees
// they observe either the pre- or post-commit state, never a partial row.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - _txlock=deferred: no implicit transaction begins until a write occurs;
//     nothing commits outside an explicit Commit
//   - busy_timeout: bounded wait on residual engine-level lock contention
//
// Writes are only reachable through WithTransaction: Insert and Update are
// methods on the Tx handle passed to the action, so commit-or-rollback on
// every exit path is enforced by construction rather than by caller
// discipline.
package store
