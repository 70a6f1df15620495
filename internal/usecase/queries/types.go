package queries

// Read models (DTO for read side)
type RoomView struct {
	ID            int     `json:"id"`
	Category      string  `json:"category"`
	PricePerNight float64 `json:"price_per_night"`
}

type ReservationView struct {
	ID           string  `json:"id"`
	RoomID       int     `json:"room_id"`
	RoomCategory string  `json:"room_category,omitempty"`
	GuestName    string  `json:"guest_name"`
	GuestPhone   string  `json:"guest_phone"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Nights       int     `json:"nights"`
	Amount       float64 `json:"amount"`
	Paid         bool    `json:"paid"`
	PaymentRef   string  `json:"payment_ref,omitempty"`
}
