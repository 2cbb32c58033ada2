package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"expedition-booking/internal/dto/request"
	"expedition-booking/internal/usecase"
	"expedition-booking/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// CreateRazorpayOrder handles POST /api/checkout/razorpay
func (h *CheckoutHandler) CreateRazorpayOrder(w http.ResponseWriter, r *http.Request) {
	h.createIntent(w, r, usecase.GatewayRazorpay)
}

// CreateStripeSession handles POST /api/checkout/stripe
func (h *CheckoutHandler) CreateStripeSession(w http.ResponseWriter, r *http.Request) {
	h.createIntent(w, r, usecase.GatewayStripe)
}

func (h *CheckoutHandler) createIntent(w http.ResponseWriter, r *http.Request, gateway string) {
	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body", nil)
		return
	}

	// Fail fast before the service touches pricing or a provider
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "validation failed", validationErrors)
		return
	}

	intent, err := h.service.CreatePurchaseIntent(r.Context(), gateway, &req)
	if err != nil {
		h.handleServiceError(w, err, "create purchase intent")
		return
	}

	utils.ResponseOK(w, intent)
}

// RazorpayStatus handles GET /api/checkout/razorpay/status. Reports
// credential presence without revealing anything.
func (h *CheckoutHandler) RazorpayStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GatewayStatus(usecase.GatewayRazorpay)
	if err != nil {
		h.handleServiceError(w, err, "gateway status")
		return
	}

	utils.ResponseOK(w, status)
}

// Quote handles POST /api/checkout/quote
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body", nil)
		return
	}

	quote, err := h.service.Quote(&req)
	if err != nil {
		h.handleServiceError(w, err, "quote")
		return
	}

	utils.ResponseOK(w, quote)
}

// handleServiceError maps checkout errors onto the wire. Provider failures
// stay opaque: the service already swapped the provider error for a generic
// message, details only exist in the server log.
func (h *CheckoutHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unknown payment gateway"):
		h.log.Warn(operation+" failed - unknown gateway",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "failed to create payment order")
	}
}
