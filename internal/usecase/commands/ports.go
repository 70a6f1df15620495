package commands

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/shared"
)

// LedgerWriter is the write side of shared.Ledger.
type LedgerWriter interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx shared.LedgerTx) error) error
}

type BookParams struct {
	RoomID          int
	Guest           reservation.Guest
	Period          reservation.StayPeriod
	SimulatePayment bool
}
