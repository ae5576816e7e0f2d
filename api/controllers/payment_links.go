package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riffus/hyperswitch/api/responses"
	"github.com/riffus/hyperswitch/api/validators"
	"github.com/riffus/hyperswitch/internal/paymentlinks"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
)

// listPaymentLinksBody is the merchant-scoped listing request.
type listPaymentLinksBody struct {
	MerchantID string `json:"merchant_id" validate:"required"`
	paymentlinks.ListPaymentLinksRequest
}

func RetrievePaymentLink(svc *paymentlinks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paymentLinkID := chi.URLParam(r, "paymentLinkId")
		if paymentLinkID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.MissingRequiredField("payment_link_id"))
			return
		}

		view, err := svc.RetrievePaymentLink(r.Context(), paymentLinkID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func InitiatePaymentLink(svc *paymentlinks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID := chi.URLParam(r, "merchantId")
		paymentID := chi.URLParam(r, "paymentId")
		if merchantID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.MissingRequiredField("merchant_id"))
			return
		}
		if paymentID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.MissingRequiredField("payment_id"))
			return
		}

		form, err := svc.InitiatePaymentLinkFlow(r.Context(), merchantID, paymentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, form)
	}
}

func ListPaymentLinks(svc *paymentlinks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body listPaymentLinksBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.ListPaymentLinks(r.Context(), body.MerchantID, body.ListPaymentLinksRequest)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
