// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"moving/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// MoverRepoFactory provides access to the mover repository within a transaction.
	MoverRepoFactory interface {
		MoverRepository() ports.MoverRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// BookingMoverUoW manages transactions spanning the booking and mover
	// aggregates. Every booking lifecycle command uses it: creation reads the
	// mover's rate card, completion and reviews write back the mover's
	// statistics atomically with the booking change.
	BookingMoverUoW interface {
		TxManager
		BookingRepoFactory
		MoverRepoFactory
	}

	// BookingMoverUoWFactory creates new booking/mover unit of work instances.
	BookingMoverUoWFactory interface {
		Create() BookingMoverUoW
	}
)
