package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/riffus/hyperswitch/api/responses"
	"github.com/riffus/hyperswitch/internal/payouts"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
)

// ValidatePayout runs the payout request model's validation rules without
// creating anything. The payout-method cross-field checks need the request's
// own Validate, so the body is decoded directly instead of through the shared
// body validator.
func ValidatePayout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer io.Copy(io.Discard, r.Body)

		var req payouts.PayoutCreateRequest
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payout request body"))
			return
		}

		if err := req.Validate(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"valid":       true,
			"payout_type": req.PayoutType,
		})
	}
}
