package response

import (
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           string  `json:"id"`
	RoomID       int     `json:"roomId"`
	RoomCategory string  `json:"roomCategory"`
	GuestName    string  `json:"guestName"`
	GuestPhone   string  `json:"guestPhone"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	Nights       int     `json:"nights"`
	Amount       float64 `json:"amount"`
	Paid         bool    `json:"paid"`
	PaymentRef   string  `json:"paymentRef,omitempty"`
}

// unknownCategory stands in for rooms that are no longer in the catalog.
const unknownCategory = "?"

func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	resp := &ReservationResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation view")
	}
	if resp.RoomCategory == "" {
		resp.RoomCategory = unknownCategory
	}
	return resp, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
