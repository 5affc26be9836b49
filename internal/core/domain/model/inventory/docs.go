// Package inventory contains the UserInventory aggregate: a client's saved
// list of household items with per-unit volumes, plus the pure volume
// aggregation used for ad-hoc estimates.
package inventory
