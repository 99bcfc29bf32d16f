package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T    `json:"list"`
	TotalCount uint64 `json:"total_count"`
}

// SuccessOne returns a single record. Write endpoints always hand back the
// full created/updated record so clients can re-render without a second read.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, total uint64) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    ListBody[T]{List: list, TotalCount: total},
	})
}

// ErrorResponse maps a service error to an HTTP status and a machine-readable
// kind. Unknown errors collapse to 500/internal without leaking details.
func ErrorResponse(c echo.Context, err error) error {
	code, kind := classify(err)
	msg := err.Error()
	if code == http.StatusInternalServerError && kind == apperrors.KindInternal {
		msg = "internal server error"
	}
	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
		Kind:    kind,
	})
}

func classify(err error) (int, string) {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code, apperrors.KindBadRequest
	}

	var transitionErr *apperrors.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return http.StatusConflict, apperrors.KindInvalidTransition
	}

	var partialErr *apperrors.PartialCommitError
	if errors.As(err, &partialErr) {
		return http.StatusInternalServerError, apperrors.KindPartialCommit
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest, apperrors.KindBadRequest
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrRequestNotFound),
		errors.Is(err, apperrors.ErrEquipmentNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, apperrors.KindNotFound
	case errors.Is(err, apperrors.ErrEquipmentReference):
		return http.StatusUnprocessableEntity, apperrors.KindReference
	case errors.Is(err, apperrors.ErrEquipmentScrapped):
		return http.StatusConflict, apperrors.KindInvalidState
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrUserExists):
		return http.StatusConflict, apperrors.KindConflict
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, apperrors.KindBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrInvalidSigningMethod):
		return http.StatusUnauthorized, apperrors.KindUnauthorized
	}

	return http.StatusInternalServerError, apperrors.KindInternal
}
