package dining

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/tableround/internal/calculator"
	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind int

const (
	KindInvalid Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindInvalidState
	KindConflict
	KindQuotaExceeded
	KindUnconfirmed
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidState:
		return "invalid_state"
	case KindConflict:
		return "conflict"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindUnconfirmed:
		return "unconfirmed"
	}
	return "unknown"
}

// Machine-readable failure codes carried in Error.Code.
const (
	CodeDuplicateName        = "DUPLICATE_NAME"
	CodePriceConflict        = "PRICE_CONFLICT"
	CodeUnitsNotFullyClaimed = "UNITS_NOT_FULLY_CLAIMED"
	CodeUnitsOverClaimed     = "UNITS_OVER_CLAIMED"
	CodeNegativeServed       = "NEGATIVE_SERVED_QUANTITY"
	CodeCheckoutUnconfirmed  = "CHECKOUT_UNCONFIRMED"
	CodeStaleVersion         = "STALE_VERSION"
	CodeAmountOverflow       = "AMOUNT_OVERFLOW"
)

// Error is the typed failure returned by every Engine operation.
type Error struct {
	Kind    Kind
	Code    string
	Message string

	// Pending lists the members that have not confirmed (KindUnconfirmed).
	Pending []string

	// Dish is the existing catalog entry behind a name or price conflict.
	Dish *models.GroupMenuItem

	cause error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches kind sentinels, so errors.Is(err, dining.ErrNotFound) works for
// any not-found failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Code != "" || t.Message != "" {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrInvalid       = &Error{Kind: KindInvalid}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrUnauthorized  = &Error{Kind: KindUnauthorized}
	ErrInvalidState  = &Error{Kind: KindInvalidState}
	ErrConflict      = &Error{Kind: KindConflict}
	ErrQuotaExceeded = &Error{Kind: KindQuotaExceeded}
	ErrUnconfirmed   = &Error{Kind: KindUnconfirmed}
)

// KindOf extracts the failure kind, or 0 for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func coded(kind Kind, code string, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func unconfirmed(g *models.Group, pending []string) *Error {
	names := make([]string, len(pending))
	for i, id := range pending {
		names[i] = g.DisplayName(id)
	}
	return &Error{
		Kind:    KindUnconfirmed,
		Code:    CodeCheckoutUnconfirmed,
		Message: fmt.Sprintf("waiting for %d member(s) to confirm: %s", len(pending), strings.Join(names, ", ")),
		Pending: pending,
	}
}

// translate turns store and allocator errors into typed failures.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return &Error{Kind: KindNotFound, Message: err.Error(), cause: err}
	case errors.Is(err, storage.ErrConflict):
		return &Error{Kind: KindConflict, Code: CodeStaleVersion, Message: err.Error(), cause: err}
	case errors.Is(err, calculator.ErrUnitsNotFullyClaimed):
		return &Error{Kind: KindInvalidState, Code: CodeUnitsNotFullyClaimed,
			Message: "units claimed " + detail(err, calculator.ErrUnitsNotFullyClaimed), cause: err}
	case errors.Is(err, calculator.ErrUnitsOverClaimed):
		return &Error{Kind: KindQuotaExceeded, Code: CodeUnitsOverClaimed,
			Message: "units claimed " + detail(err, calculator.ErrUnitsOverClaimed), cause: err}
	case errors.Is(err, calculator.ErrAmountOverflow):
		return &Error{Kind: KindInvalid, Code: CodeAmountOverflow, Message: err.Error(), cause: err}
	case errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrDuplicateParticipant),
		errors.Is(err, calculator.ErrInvalidWeight),
		errors.Is(err, calculator.ErrInvalidUnits),
		errors.Is(err, calculator.ErrInvalidQuantity),
		errors.Is(err, calculator.ErrNegativePrice),
		errors.Is(err, calculator.ErrUnknownMode):
		return &Error{Kind: KindInvalid, Message: err.Error(), cause: err}
	}
	return err
}

// detail strips the sentinel text the calculator prefixes to its errors, so
// a coded Error does not repeat its code.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
