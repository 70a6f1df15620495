package infra

import (
	"log/slog"

	"hotel-reservation/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindIOFailure RepositoryErrorKind = "IO_FAILURE"
	KindMalformed RepositoryErrorKind = "MALFORMED_RECORD"
	KindDBFailure RepositoryErrorKind = "DB_FAILURE"
)

// RepositoryError is what every store returns. It is marked with errs.ErrPersistence.
type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs the failure once at the store boundary; callers above only wrap.
// The cause is kept as is since Error already prefixes msg.
func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.Error("store failure: "+msg, attrs...)

	return errs.Mark(RepositoryError{Kind: kind, msg: msg, err: err}, errs.ErrPersistence)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
