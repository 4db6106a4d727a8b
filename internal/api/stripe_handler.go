package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"limpia/internal/service"
)

type StripeWebhookHandler struct {
	StripeSecret   string
	bookingService *service.BookingService
	financeService *service.FinanceService
	stripeService  *service.StripeService
	logger         *zap.Logger
}

func NewStripeWebhookHandler(stripeSecret string, bookingService *service.BookingService, financeService *service.FinanceService, stripeService *service.StripeService, logger *zap.Logger) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		StripeSecret:   stripeSecret,
		bookingService: bookingService,
		financeService: financeService,
		stripeService:  stripeService,
		logger:         logger,
	}
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("reading webhook body", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil || sess.ID == "" {
			h.logger.Warn("malformed checkout.session payload", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		booking, err := h.bookingService.ConfirmDepositBySession(sess.ID)
		if err != nil {
			h.logger.Error("confirming deposit", zap.String("session", sess.ID), zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// The paid deposit shows up in the finance ledger right away.
		if err := h.financeService.RecordBookingIncome(booking, sess.AmountTotal); err != nil {
			h.logger.Error("recording deposit income", zap.String("code", booking.Code), zap.Error(err))
		}

	case "charge.refunded":
		var charge stripe.Charge
		json.Unmarshal(event.Data.Raw, &charge)
		if charge.PaymentIntent != nil && charge.PaymentIntent.ID != "" {
			sessionID, err := h.stripeService.GetSessionIDByPaymentIntentID(charge.PaymentIntent.ID)
			if err != nil {
				h.logger.Warn("no session for refunded charge",
					zap.String("payment_intent", charge.PaymentIntent.ID), zap.Error(err))
				return
			}
			if err := h.bookingService.MarkDepositRefundedBySession(sessionID); err != nil {
				h.logger.Error("marking deposit refunded", zap.String("session", sessionID), zap.Error(err))
				return
			}
		}

	default:
		h.logger.Debug("unhandled stripe event", zap.String("type", string(event.Type)))
	}

	w.WriteHeader(http.StatusOK)
}
