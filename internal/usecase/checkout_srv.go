package usecase

import (
	"context"
	"errors"
	"fmt"

	"expedition-booking/internal/dto/request"
	"expedition-booking/internal/dto/response"
	"expedition-booking/internal/payment"
	"expedition-booking/internal/pricing"
	"expedition-booking/pkg/utils"

	"go.uber.org/zap"
)

// Gateway names, one inbound route each.
const (
	GatewayRazorpay = "razorpay"
	GatewayStripe   = "stripe"
)

// ErrUnknownGateway is returned for gateway names no adapter is wired for.
var ErrUnknownGateway = errors.New("unknown payment gateway")

type CheckoutService interface {
	CreatePurchaseIntent(ctx context.Context, gateway string, req *request.CheckoutRequest) (*response.PurchaseIntentResponse, error)
	Quote(req *request.QuoteRequest) (*response.QuoteResponse, error)
	GatewayStatus(gateway string) (*response.GatewayStatusResponse, error)
}

type checkoutService struct {
	gateways map[string]*payment.Gateway
	log      *zap.Logger
}

func NewCheckoutService(gateways map[string]*payment.Gateway, log *zap.Logger) CheckoutService {
	return &checkoutService{
		gateways: gateways,
		log:      log.With(zap.String("service", "checkout")),
	}
}

func (s *checkoutService) CreatePurchaseIntent(ctx context.Context, gateway string, req *request.CheckoutRequest) (*response.PurchaseIntentResponse, error) {
	// Validate before pricing or any provider call
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed",
			zap.String("gateway", gateway),
			zap.Any("errors", errs),
		)
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	g, ok := s.gateways[gateway]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGateway, gateway)
	}

	order := payment.CheckoutOrder{
		Amount:        req.Amount,
		Currency:      req.Currency,
		MountainID:    req.MountainID,
		MountainName:  req.MountainName,
		Date:          req.Date,
		Participants:  req.Participants,
		CustomerName:  req.CustomerInfo.Name,
		CustomerEmail: req.CustomerInfo.Email,
	}

	intent, err := g.CreatePurchaseIntent(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create purchase intent: %w", err)
	}

	resp := &response.PurchaseIntentResponse{
		Demo:      intent.Demo,
		BookingID: intent.BookingID,
		Amount:    intent.AmountMinor,
		Currency:  intent.Currency,
		Key:       intent.ClientKey,
		URL:       intent.CheckoutURL,
	}
	if g.ReferenceField() == payment.RefFieldSession {
		resp.SessionID = intent.Reference
	} else {
		resp.OrderID = intent.Reference
	}

	return resp, nil
}

func (s *checkoutService) Quote(req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	fee := pricing.ServiceFee(req.Currency, req.Amount)

	return &response.QuoteResponse{
		Amount:     req.Amount,
		ServiceFee: fee,
		Total:      pricing.RoundMoney(req.Amount + fee),
		Currency:   req.Currency,
	}, nil
}

func (s *checkoutService) GatewayStatus(gateway string) (*response.GatewayStatusResponse, error) {
	g, ok := s.gateways[gateway]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGateway, gateway)
	}

	return &response.GatewayStatusResponse{Configured: g.Configured()}, nil
}
