package reject_request

import (
	"context"

	rejectRequest "github.com/m04kA/Parish-BookingService/internal/usecase/reject_request"
)

type RejectRequestUseCase interface {
	Execute(ctx context.Context, req *rejectRequest.Request) (*rejectRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
