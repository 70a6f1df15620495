package api

import (
	"errors"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidRequest      = "Invalid request"
	msgInternal            = "Internal server error"
	msgMissingDates        = "Please select both Check-In and Check-Out dates."
	msgInvalidDates        = "Please select valid dates."
	msgCheckOutBeforeIn    = "Check-Out must be after Check-In."
	msgGuestRequired       = "Enter guest name and phone."
	msgInvalidCard         = "Invalid card number (must be 4 digits)."
	msgRoomNotFound        = "Room not found."
	msgRoomUnavailable     = "Room is not available for the selected dates."
	msgSaveFailed          = "Error saving reservation"
	msgUpdateFailed        = "Error updating reservations"
	msgReservationNotFound = "Reservation ID not found."
)

// validationMessage maps errs.ErrValidation failures to the text shown to the guest.
func validationMessage(err error) string {
	switch {
	case errs.Is(err, request.ErrMissingDates):
		return msgMissingDates
	case errs.Is(err, reservation.ErrInvalidDate):
		return msgInvalidDates
	case errs.Is(err, reservation.ErrInvalidStayPeriod):
		return msgCheckOutBeforeIn
	case errs.Is(err, reservation.ErrEmptyGuestName), errs.Is(err, reservation.ErrEmptyGuestPhone):
		return msgGuestRequired
	case errs.Is(err, request.ErrInvalidCard):
		return msgInvalidCard
	default:
		return msgInvalidRequest
	}
}

// bindingDetail names the request fields that failed binding validation, e.g. "GuestName: required".
func bindingDetail(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field()+": "+fe.Tag())
	}
	return out
}
