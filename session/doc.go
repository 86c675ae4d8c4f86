// Package session owns the editable grid and the trace of the current run,
// and enforces the single run-in-progress rule between them.
//
// A run is in progress while a trace exists and its cursor is not Complete.
// During a run:
//
//   - grid edits fail with grid.ErrGridLocked;
//   - Run fails with ErrAlreadyRunning;
//   - Stop discards the trace, resets the cursor, and unlocks the grid.
//
// Once playback completes the trace stays available for inspection and the
// next edit or Run discards it implicitly.
//
// Session is single-threaded by contract: it holds no mutex, and mutual
// exclusion between editing and playback comes from the run flag alone.
package session
