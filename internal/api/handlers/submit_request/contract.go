package submit_request

import (
	"context"

	submitRequest "github.com/m04kA/Parish-BookingService/internal/usecase/submit_request"
)

type SubmitRequestUseCase interface {
	Execute(ctx context.Context, req *submitRequest.Request) (*submitRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
