package controllers

import (
	"fmt"
	"net/http"

	"github.com/MohamedSultan7/davinci-bakers/api/responses"
	"github.com/MohamedSultan7/davinci-bakers/api/validators"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type paymentMethod struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	Last4     string `json:"last4,omitempty"`
	IsDefault bool   `json:"is_default"`
}

// mockPaymentMethods backs the checkout UI. Checkout always settles as paid,
// so these are display-only.
var mockPaymentMethods = []paymentMethod{
	{ID: "pm_invoice_net30", Type: "invoice", Label: "Invoice (Net 30)", IsDefault: true},
	{ID: "pm_card_on_file", Type: "card", Label: "Visa on file", Last4: "4242"},
}

func PaymentMethodsList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, mockPaymentMethods)
	}
}

type paymentIntentRequest struct {
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required"`
}

type paymentIntent struct {
	ID           string          `json:"id"`
	ClientSecret string          `json:"client_secret,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

type paymentConfirmRequest struct {
	IntentID string `json:"intent_id" validate:"required"`
}

// PaymentIntentCreate fakes the processor's intent creation step. The intent
// is never stored; confirmation always succeeds.
func PaymentIntentCreate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload paymentIntentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Amount.IsNegative() || payload.Amount.IsZero() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive"))
			return
		}

		id := fmt.Sprintf("pi_%s", uuid.NewString())
		responses.WriteSuccessStatus(w, http.StatusCreated, paymentIntent{
			ID:           id,
			ClientSecret: fmt.Sprintf("%s_secret_%s", id, uuid.NewString()),
			Amount:       payload.Amount,
			Status:       "requires_confirmation",
		})
	}
}

func PaymentIntentConfirm(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload paymentConfirmRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, paymentIntent{
			ID:     payload.IntentID,
			Status: "succeeded",
		})
	}
}
