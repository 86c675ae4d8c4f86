// Package grid models the editable board a pathfinding run operates on.
//
// What:
//
//   - Grid is a fixed rows×cols matrix of Cells stored in row-major order.
//   - Every Cell carries a structural Role (Empty, Obstacle, Source, Target)
//     and per-run search metadata (Distance, Visited, predecessor).
//   - Exactly one Source and one Target exist at all times.
//   - Edits (SetObstacle, PlaceObstacle, Erase, MoveSource, MoveTarget,
//     ClearObstacles, Clear) are rejected with ErrGridLocked while the grid
//     is locked by an active run.
//   - Neighbors resolves the traversable 4-directional neighbors of a cell in
//     the fixed order up, down, left, right.
//   - Reconstruct walks predecessor links back from a cell to the Source.
//
// Why:
//
//   - Search engines take a Clone of the grid, so algorithm metadata never
//     leaks into the caller's editable board.
//   - The fixed neighbor order makes every traversal reproducible.
//
// Text layout:
//
//	S..#.
//	.#.#.
//	...#T
//
// Parse reads this alphabet ('.', '#', 'S', 'T') and String writes it back.
//
// Complexity:
//
//   - New, Clone, ResetMetadata, ClearObstacles: O(R×C).
//   - SetObstacle, MoveSource, MoveTarget, Neighbors: O(1).
//   - Reconstruct: O(path length).
//
// Errors:
//
//   - ErrInvalidPlacement: bad dimensions, out-of-bounds position, or Source == Target.
//   - ErrOccupiedBySpecial: moving Source onto Target or vice versa.
//   - ErrGridLocked: structural edit attempted while a run is in progress.
//   - ErrBadLayout: malformed text layout passed to Parse.
package grid
