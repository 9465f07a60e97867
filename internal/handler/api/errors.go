package api

import (
	"net/http"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/domain/user"
	"parking-portal/internal/handler/httperr"
	"parking-portal/internal/infra"
	"parking-portal/internal/pkg/errs"
	"parking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type errorRule struct {
	target error
	status int
}

// First match wins; marks added with errs.Mark are visible here.
var errorRules = []errorRule{
	{errs.ErrAuthenticationRequired, http.StatusUnauthorized},
	{errs.ErrAdminRequired, http.StatusForbidden},
	{errs.ErrValidationFailed, http.StatusUnprocessableEntity},
	{usecase.ErrInvalidCredentials, http.StatusBadRequest},
	{errs.ErrUnknownAction, http.StatusBadRequest},
	{errs.ErrSubmitInProgress, http.StatusConflict},
	{errs.ErrCloseWhileSubmitting, http.StatusConflict},
	{errs.ErrFlowFinished, http.StatusConflict},
	{errs.ErrRequesterChanged, http.StatusConflict},
	{errs.ErrNoLotSelected, http.StatusConflict},
	{usecase.ErrSpotNotReservable, http.StatusConflict},
	{usecase.ErrNotCancellable, http.StatusConflict},
	{errs.ErrFlowNotFound, http.StatusNotFound},
	{usecase.ErrSpotNotFound, http.StatusNotFound},
	{usecase.ErrSessionUnavailable, http.StatusServiceUnavailable},
}

var validationErrors = []error{
	user.ErrInvalidEmail,
	user.ErrInvalidRole,
	user.ErrPasswordTooWeak,
	user.ErrPasswordMismatch,
	user.ErrFirstnameRequired,
	user.ErrLastnameRequired,
	reservation.ErrInvalidWireTime,
}

// statusFor maps a usecase error to the portal's HTTP status. Parking API
// 4xx answers keep their status; everything else from the API is a 502.
func statusFor(err error) int {
	for _, r := range errorRules {
		if errs.Is(err, r.target) {
			return r.status
		}
	}
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			return http.StatusUnprocessableEntity
		}
	}
	if status := infra.StatusOf(err); status >= 400 && status < 500 {
		return status
	}
	if infra.IsKind(err, infra.KindAPI) || infra.IsKind(err, infra.KindTransport) || infra.IsKind(err, infra.KindFormat) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func messageFor(err error, status int) string {
	switch {
	case status == http.StatusInternalServerError:
		return "Internal server error"
	case errs.Is(err, usecase.ErrSessionUnavailable):
		return "Session store unavailable"
	}
	var fieldErrs parking.FieldErrors
	if errs.As(err, &fieldErrs) {
		return "Validation failed"
	}
	var formErrs reservation.ValidationErrors
	if errs.As(err, &formErrs) {
		return "Validation failed"
	}
	return infra.MessageOf(err)
}

// abortWithUsecaseError answers with the mapped status. detail defaults to
// an error notification carrying the same message.
func abortWithUsecaseError(c *gin.Context, err error, detail any) {
	status := statusFor(err)
	msg := messageFor(err, status)
	if detail == nil {
		detail = httperr.ErrorNotification(msg)
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.ErrorNotification("Invalid request format"))
}
