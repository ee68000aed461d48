package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/landslide-dashboard/internal/domain"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями.
// Предопределённые ошибки - общие значения, поэтому их нельзя мутировать.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// FromDomain переводит доменную ошибку в AppError.
// Неизвестные ошибки становятся INTERNAL_SERVER_ERROR.
func FromDomain(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	details := map[string]interface{}{"reason": err.Error()}

	switch {
	case stderrors.Is(err, domain.ErrRegionNotFound):
		return ErrRegionNotFound.WithDetails(details)
	case stderrors.Is(err, domain.ErrSessionNotFound):
		return ErrSessionNotFound.WithDetails(details)
	case stderrors.Is(err, domain.ErrInvalidView):
		return ErrInvalidView.WithDetails(details)
	case stderrors.Is(err, domain.ErrInvalidRiskLevel), stderrors.Is(err, domain.ErrEmptyRiskFilter):
		return ErrInvalidRiskLevel.WithDetails(details)
	case stderrors.Is(err, domain.ErrInvalidBaseLayer):
		return ErrInvalidBaseLayer.WithDetails(details)
	case stderrors.Is(err, domain.ErrNoRiskZones),
		stderrors.Is(err, domain.ErrSeriesLengthMismatch),
		stderrors.Is(err, domain.ErrMissingFactor),
		stderrors.Is(err, domain.ErrEmptyCatalog):
		return ErrDataIntegrity.WithDetails(details)
	}

	return ErrInternalServer
}
