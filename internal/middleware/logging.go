package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/metrics"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// and records its outcome in the RPC metrics. It logs the procedure name,
// user ID, duration, and any error codes/messages.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			userID := GetUserID(ctx) // empty if pre-auth

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			metrics.RPCRequests.WithLabelValues(procedure, code).Inc()
			metrics.RPCDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())

			duration := elapsed.Milliseconds()
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown {
					logger.Warn("RPC error",
						"procedure", procedure,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"user_id", userID,
						"duration_ms", duration,
					)
				} else {
					logger.Error("RPC error",
						"procedure", procedure,
						"error", err,
						"user_id", userID,
						"duration_ms", duration,
					)
				}
			} else {
				logger.Info("RPC ok",
					"procedure", procedure,
					"user_id", userID,
					"duration_ms", duration,
				)
			}

			return resp, err
		}
	}
}
