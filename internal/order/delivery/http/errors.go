package http

import (
	"errors"
	"net/http"

	"household-orders/internal/order"
	pkgErrors "household-orders/pkg/errors"
)

var (
	errInvalidRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "Richiesta non valida")
	errEmptyProduct   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Inserisci il nome del prodotto")
	errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "Data non valida")
	errInvalidID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "ID ordine non valido")
	errNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "Ordine non trovato")
	errMalformedData  = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Il foglio contiene dati non validi")
	errStore          = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Foglio ordini non raggiungibile, riprova")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Errors raised by request processing are already HTTP errors.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, order.ErrEmptyProduct):
		return errEmptyProduct
	case errors.Is(err, order.ErrInvalidDueDate):
		return errInvalidDueDate
	case errors.Is(err, order.ErrOrderNotFound):
		return errNotFound
	case errors.Is(err, order.ErrMalformedDate),
		errors.Is(err, order.ErrMalformedID),
		errors.Is(err, order.ErrDuplicateID):
		return errMalformedData
	case errors.Is(err, order.ErrStoreUnavailable):
		return errStore
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// message returns the user-facing text for err.
func (h *handler) message(err error) string {
	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}
