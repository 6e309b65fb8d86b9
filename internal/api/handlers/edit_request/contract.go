package edit_request

import (
	"context"

	editRequest "github.com/m04kA/Parish-BookingService/internal/usecase/edit_request"
)

type EditRequestUseCase interface {
	Execute(ctx context.Context, req *editRequest.Request) (*editRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
