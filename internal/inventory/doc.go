// Package inventory implements the transactional workflows that keep
// product stock consistent with orders and manual adjustments.
//
// Stock is a ledger balance: order saves deduct line-item quantities,
// order edits restore the previous items' quantities and reapply the
// current ones, and adjustments apply signed deltas. Each workflow runs
// inside a single storage transaction; either every stock mutation of a
// save is visible or none is.
//
// Order editing uses restore-then-reapply rather than item-level
// diffing: every previously persisted line item's quantity is added back
// and the whole current item set reapplied. Adding, removing, or
// changing items all reduce to the same uniform pass at the cost of
// redundant writes.
package inventory
