package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/auth"
	"github.com/mmynk/tableround/internal/dining"
	"github.com/mmynk/tableround/internal/middleware"
)

// Metadata keys attached to failed responses.
const (
	KindHeader    = "X-Dining-Kind"
	CodeHeader    = "X-Dining-Code"
	PendingHeader = "X-Dining-Pending"
)

var codeByKind = map[dining.Kind]connect.Code{
	dining.KindInvalid:       connect.CodeInvalidArgument,
	dining.KindNotFound:      connect.CodeNotFound,
	dining.KindUnauthorized:  connect.CodePermissionDenied,
	dining.KindInvalidState:  connect.CodeFailedPrecondition,
	dining.KindConflict:      connect.CodeAlreadyExists,
	dining.KindQuotaExceeded: connect.CodeResourceExhausted,
	dining.KindUnconfirmed:   connect.CodeFailedPrecondition,
}

// toConnectError maps an engine failure onto a Connect error carrying the
// failure kind and code as metadata.
func toConnectError(err error) error {
	var derr *dining.Error
	if !errors.As(err, &derr) {
		return connect.NewError(connect.CodeInternal, err)
	}
	code, ok := codeByKind[derr.Kind]
	if !ok {
		code = connect.CodeUnknown
	}
	if derr.Code == dining.CodeStaleVersion {
		code = connect.CodeAborted
	}

	cerr := connect.NewError(code, derr)
	cerr.Meta().Set(KindHeader, derr.Kind.String())
	if derr.Code != "" {
		cerr.Meta().Set(CodeHeader, derr.Code)
	}
	if len(derr.Pending) > 0 {
		cerr.Meta().Set(PendingHeader, strings.Join(derr.Pending, ","))
	}
	return cerr
}

// actorOf returns the authenticated user ID.
func actorOf(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// fail logs a failed call and converts err for the wire. Typed failures are
// expected outcomes and log at Warn.
func fail(logger *slog.Logger, op string, err error, args ...any) error {
	args = append(args, "error", err)
	if dining.KindOf(err) == 0 {
		logger.Error(op+" failed", args...)
	} else {
		logger.Warn(op+" failed", args...)
	}
	return toConnectError(err)
}
