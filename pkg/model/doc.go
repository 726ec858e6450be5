// Package model defines the plain entity records shared across the
// stockroom service: catalog entities (categories, suppliers, customers,
// products), orders with their line items, inventory adjustments, report
// metadata, and user accounts.
//
// All entities carry an int64 surrogate identity. An identity greater than
// zero marks a persisted record; saving an entity with a zero identity
// inserts it and assigns the database-generated value.
//
// Monetary amounts use shopspring/decimal to avoid float drift when
// totals are recomputed from line items.
//
// Optional columns are pointer fields. A nil pointer means "absent" and is
// omitted from generated SQL; a non-nil pointer to a zero value is written
// out. Callers that need to blank a column must therefore pass a pointer
// to the empty value, not nil.
package model
