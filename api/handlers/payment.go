package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/models"
)

// Premium upgrade price. One-time payment, not a subscription.
const (
	premiumAmountCents = 2999
	premiumCurrency    = "usd"
	maxWebhookBody     = 65536
)

// Payment exposes the Stripe checkout routes and webhook.
type Payment struct {
	DB  databases.PaymentDatabase
	UDB databases.UserDatabase
}

type checkoutRequest struct {
	HostURL string `json:"host_url"`
}

// CreateCheckoutSessionHandler opens a Stripe Checkout Session for the
// premium upgrade and records the pending transaction.
func (p Payment) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserIDFromContext(r.Context())
	if !ok {
		config.ErrorStatus("missing authenticated user", http.StatusUnauthorized, w, errors.New("no user in context"))
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.HostURL == "" {
		config.ErrorStatus("host_url is required", http.StatusBadRequest, w, err)
		return
	}
	hostURL := strings.TrimRight(req.HostURL, "/")

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(hostURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(hostURL + "/payment-cancelled"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(premiumCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Premium Upgrade"),
						Description: stripe.String("Unlock premium wedding invitation templates"),
					},
					UnitAmount: stripe.Int64(premiumAmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("user_id", userID)

	s, err := session.New(params)
	if err != nil {
		config.ErrorStatus("failed to create checkout session", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	now := time.Now().UTC()
	tx := models.PaymentTransaction{
		ID:            uuid.New().String(),
		UserID:        userID,
		SessionID:     s.ID,
		Amount:        premiumAmountCents,
		Currency:      premiumCurrency,
		PaymentStatus: models.PaymentStatusInitiated,
		Metadata:      map[string]string{"user_id": userID},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := p.DB.InsertOne(ctx, tx); err != nil {
		config.ErrorStatus("failed to record transaction", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]string{
		"url":        s.URL,
		"session_id": s.ID,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// CheckoutStatusHandler polls Stripe for the session state and credits the
// premium upgrade exactly once.
func (p Payment) CheckoutStatusHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	s, err := session.Get(sessionID, nil)
	if err != nil {
		config.ErrorStatus("failed to get checkout session", http.StatusNotFound, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	paymentStatus := string(s.PaymentStatus)
	if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		if err := p.creditPremium(r, sessionID); err != nil {
			config.ErrorStatus("failed to apply premium upgrade", http.StatusInternalServerError, w, err)
			return
		}
	} else if err := p.DB.UpdateStatus(ctx, sessionID, paymentStatus); err != nil && !errors.Is(err, databases.ErrNotFound) {
		zap.S().With(err).Warn("failed to update transaction status")
	}

	b, err := json.Marshal(map[string]string{
		"status":         string(s.Status),
		"payment_status": paymentStatus,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// StripeWebhookHandler processes signed Stripe events. Only
// checkout.session.completed is acted on.
func (p Payment) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		config.ErrorStatus("failed to read webhook body", http.StatusBadRequest, w, err)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		config.ErrorStatus("webhook signature verification failed", http.StatusBadRequest, w, err)
		return
	}

	if event.Type == "checkout.session.completed" {
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			config.ErrorStatus("failed to parse event payload", http.StatusBadRequest, w, err)
			return
		}
		if err := p.creditPremium(r, cs.ID); err != nil {
			config.ErrorStatus("failed to apply premium upgrade", http.StatusInternalServerError, w, err)
			return
		}
	}

	w.Write([]byte(`{"received": true}`))
}

// creditPremium marks the transaction paid and upgrades the user. A
// transaction already marked paid is left alone, so a poll racing the webhook
// cannot double-credit.
func (p Payment) creditPremium(r *http.Request, sessionID string) error {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	tx, err := p.DB.FindBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if tx.PaymentStatus == models.PaymentStatusPaid {
		return nil
	}

	if err := p.DB.UpdateStatus(ctx, sessionID, models.PaymentStatusPaid); err != nil {
		return err
	}
	if err := p.UDB.SetPremium(ctx, tx.UserID, true); err != nil {
		return err
	}
	zap.S().Infow("premium upgrade applied", "userID", tx.UserID, "sessionID", sessionID)
	return nil
}
