// Package services contains stateless domain services that coordinate logic
// spanning more than one aggregate: price calculation, rating aggregation,
// access policy, and the lifecycle transition policy.
package services
