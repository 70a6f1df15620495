package queries

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/usecase/shared"
)

func ToRoomView(r *room.Room) *RoomView {
	return &RoomView{
		ID:            r.ID(),
		Category:      r.Category().String(),
		PricePerNight: r.PricePerNight().Units(),
	}
}

// ToReservationView leaves RoomCategory empty when the room is no longer in the catalog.
func ToReservationView(res *reservation.Reservation, rooms shared.RoomLookup) *ReservationView {
	view := &ReservationView{
		ID:         res.ID(),
		RoomID:     res.RoomID(),
		GuestName:  res.Guest().Name(),
		GuestPhone: res.Guest().Phone(),
		CheckIn:    res.Period().CheckIn().String(),
		CheckOut:   res.Period().CheckOut().String(),
		Nights:     res.Period().Nights(),
		Amount:     res.Amount().Units(),
		Paid:       res.IsPaid(),
		PaymentRef: res.Payment().Ref(),
	}
	if r, ok := rooms.FindByID(res.RoomID()); ok {
		view.RoomCategory = r.Category().String()
	}
	return view
}
