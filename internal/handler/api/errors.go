package api

import (
	"errors"
	"net/http"

	"github.com/gahoccode/richslow/internal/service/vci"
	"github.com/gahoccode/richslow/internal/services/valuation"
	"github.com/gahoccode/richslow/internal/usecase"
	xhttp "github.com/gahoccode/richslow/pkg/http"
)

// toAppError maps domain errors onto HTTP error envelopes. Specific kinds
// first, wrappers like DataFetchError last, so a fetch failure that wraps an
// upstream APIError still reports as a fetch failure.
func toAppError(err error) *xhttp.AppError {
	var insufficient *valuation.InsufficientDataError
	if errors.As(err, &insufficient) {
		return xhttp.NewAppError("ERR_INSUFFICIENT_DATA", "", insufficient.Error(), http.StatusBadRequest).
			WithParam("observed", insufficient.Observed).
			WithParam("required", insufficient.Required).
			WithError(err)
	}

	var degenerate *valuation.DegenerateCapitalStructureError
	if errors.As(err, &degenerate) {
		return xhttp.NewAppError("ERR_DEGENERATE_CAPITAL_STRUCTURE", "", degenerate.Error(), http.StatusBadRequest).
			WithError(err)
	}

	var missing *valuation.MissingMarketDataError
	if errors.As(err, &missing) {
		return xhttp.NewAppError("ERR_MISSING_MARKET_DATA", missing.Field, missing.Error(), http.StatusNotFound).
			WithError(err)
	}

	var fetch *valuation.DataFetchError
	if errors.As(err, &fetch) {
		return xhttp.NewAppError("ERR_DATA_FETCH", "", fetch.Error(), http.StatusInternalServerError).
			WithError(err)
	}

	var api *vci.APIError
	if errors.As(err, &api) {
		return xhttp.NewAppError("ERR_DATA_FETCH", "", api.Error(), http.StatusInternalServerError).
			WithError(err)
	}

	if errors.Is(err, usecase.ErrInvalidDateWindow) {
		return xhttp.BadRequestError(err.Error()).WithError(err)
	}

	return xhttp.InternalError(err.Error()).WithError(err)
}
