//go:build unit || e2e

// Package fakestore provides in-memory stores with failure injection.
package fakestore

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"

	"hotel-reservation/internal/domain/reservation"
)

var ErrInjected = errors.New("injected store failure")

type ReservationStore struct {
	mu      sync.Mutex
	records []*reservation.Reservation

	LoadErr   error
	AppendErr error
	RemoveErr error

	Appends int
	Removes int
}

func NewReservationStore(initial ...*reservation.Reservation) *ReservationStore {
	return &ReservationStore{records: slices.Clone(initial)}
}

func (s *ReservationStore) Load(_ context.Context) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return slices.Clone(s.records), nil
}

func (s *ReservationStore) Append(_ context.Context, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AppendErr != nil {
		return s.AppendErr
	}
	s.records = append(s.records, res)
	s.Appends++
	return nil
}

func (s *ReservationStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	s.records = slices.DeleteFunc(s.records, func(r *reservation.Reservation) bool { return r.HasID(id) })
	s.Removes++
	return nil
}

func (s *ReservationStore) ReplaceAll(_ context.Context, all []*reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(all)
	return nil
}

// IDs returns the persisted ids in order.
func (s *ReservationStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.records))
	for _, r := range s.records {
		ids = append(ids, r.ID())
	}
	return ids
}

// SequentialIDs yields RES-1, RES-2, ...
type SequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *SequentialIDs) NewReservationID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "RES-" + strconv.Itoa(g.n)
}
