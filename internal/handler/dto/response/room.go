package response

import (
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            int     `json:"id"`
	Category      string  `json:"category"`
	PricePerNight float64 `json:"pricePerNight"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func FromRoomView(view *queries.RoomView) (*RoomResponse, error) {
	resp := &RoomResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map room view")
	}
	return resp, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// NewCategoriesResponse lists the wildcard first, the way the search filter offers it.
func NewCategoriesResponse(categories []string) *CategoriesResponse {
	return &CategoriesResponse{Categories: append([]string{room.CategoryAny}, categories...)}
}
