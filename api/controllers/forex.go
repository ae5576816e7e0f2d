package controllers

import (
	"net/http"

	"github.com/riffus/hyperswitch/api/responses"
	"github.com/riffus/hyperswitch/internal/forex"
	"github.com/riffus/hyperswitch/pkg/enums"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
	"github.com/shopspring/decimal"
)

func ForexRates(svc *forex.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.GetRates(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rates)
	}
}

func ForexConvert(svc *forex.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		amount, err := decimal.NewFromString(query.Get("amount"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.InvalidDataValue("amount", err))
			return
		}
		from, err := enums.ParseCurrency(query.Get("from"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.InvalidDataValue("from", err))
			return
		}
		to, err := enums.ParseCurrency(query.Get("to"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.InvalidDataValue("to", err))
			return
		}

		converted, err := svc.Convert(r.Context(), amount, from, to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"amount":           amount,
			"from":             from,
			"to":               to,
			"converted_amount": converted,
		})
	}
}
