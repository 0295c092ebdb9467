package validate_zip

import (
	"context"

	validateZip "github.com/rubenautodetail/autodetailapp/internal/usecase/validate_zip"
)

type ValidateZipUseCase interface {
	Execute(ctx context.Context, req *validateZip.Request) (*validateZip.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
