// Package actor identifies who is performing an operation: an authenticated
// user ID plus a role. Authentication itself happens upstream; this package
// only models the identity the access policy reasons about.
package actor
