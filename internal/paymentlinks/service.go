package paymentlinks

import (
	"context"
	"fmt"

	"github.com/riffus/hyperswitch/pkg/clock"
	"github.com/riffus/hyperswitch/pkg/db/models"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
	"github.com/riffus/hyperswitch/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// ServiceParams wires the link engine's collaborators.
type ServiceParams struct {
	Store         Store
	Clock         clock.Clock
	Metrics       *metrics.PaymentLinkMetrics
	Logger        *logger.Logger
	SDKURL        string
	DefaultDomain string
}

// Service orchestrates the hosted payment-link lifecycle.
type Service struct {
	store         Store
	clk           clock.Clock
	metrics       *metrics.PaymentLinkMetrics
	logg          *logger.Logger
	sdkURL        string
	defaultDomain string
}

func NewService(params ServiceParams) *Service {
	clk := params.Clock
	if clk == nil {
		clk = clock.System()
	}
	return &Service{
		store:         params.Store,
		clk:           clk,
		metrics:       params.Metrics,
		logg:          params.Logger,
		sdkURL:        params.SDKURL,
		defaultDomain: params.DefaultDomain,
	}
}

// InitiatePaymentLinkFlow runs the hosted-checkout render flow for one payment.
// The steps run in a fixed order and the first failure aborts the whole flow;
// no partial artifacts are ever returned.
func (s *Service) InitiatePaymentLinkFlow(ctx context.Context, merchantID, paymentID string) (*PaymentLinkFormData, error) {
	started := s.clk.Now()
	ctx = s.logg.WithFields(ctx, map[string]any{
		"merchant_id": merchantID,
		"payment_id":  paymentID,
	})

	intent, err := s.store.FindPaymentIntentByIDAndMerchant(ctx, paymentID, merchantID)
	if err != nil {
		s.metrics.IncInitiation("intent_not_found")
		return nil, err
	}

	if err := guardLinkInitiation(intent.Status); err != nil {
		s.metrics.IncGuardRejection(intent.Status.String())
		s.metrics.IncInitiation("guard_rejected")
		s.logg.Warn(ctx, fmt.Sprintf("link initiation rejected for status %s", intent.Status))
		return nil, err
	}

	if intent.PaymentLinkID == nil || *intent.PaymentLinkID == "" {
		s.metrics.IncInitiation("link_not_found")
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment link not found")
	}

	link, err := s.store.FindPaymentLinkByID(ctx, *intent.PaymentLinkID)
	if err != nil {
		s.metrics.IncInitiation("link_not_found")
		return nil, err
	}
	ctx = s.logg.WithPaymentLinkID(ctx, link.PaymentLinkID)

	merchant, err := s.store.FindMerchantAccountByID(ctx, merchantID)
	if err != nil {
		s.metrics.IncInitiation("merchant_not_found")
		return nil, err
	}

	paymentOverride, err := ParsePaymentLinkConfig(link.PaymentLinkConfig)
	if err != nil {
		s.metrics.IncInitiation("config_invalid")
		return nil, err
	}

	merchantName := ""
	if merchant.MerchantName != nil {
		merchantName = *merchant.MerchantName
	}
	resolved, _, err := ResolveLinkConfig(paymentOverride, merchant.BusinessLinkConfig, merchantName, s.defaultDomain)
	if err != nil {
		s.metrics.IncInitiation("config_invalid")
		return nil, err
	}

	details, err := AssemblePayload(intent, merchant, resolved, link)
	if err != nil {
		s.metrics.IncInitiation("payload_invalid")
		return nil, err
	}

	script, err := RenderScript(details)
	if err != nil {
		s.metrics.IncInitiation("render_failed")
		return nil, err
	}
	style := RenderStyle(resolved, DefaultBackgroundColor)

	s.metrics.IncInitiation("success")
	s.metrics.ObserveRenderDuration("initiate", s.clk.Now().Sub(started))
	s.logg.Info(ctx, "payment link flow rendered")

	return &PaymentLinkFormData{
		JSScript:  script,
		CSSScript: style,
		SDKURL:    s.sdkURL,
	}, nil
}

// RetrievePaymentLink returns the public status view of one link. The status
// is computed from the expiry instant on every read and never persisted.
func (s *Service) RetrievePaymentLink(ctx context.Context, paymentLinkID string) (*RetrievePaymentLinkResponse, error) {
	ctx = s.logg.WithPaymentLinkID(ctx, paymentLinkID)

	link, err := s.store.FindPaymentLinkByID(ctx, paymentLinkID)
	if err != nil {
		return nil, err
	}
	response, err := s.buildLinkView(link)
	if err != nil {
		return nil, err
	}
	s.logg.Debug(ctx, "payment link retrieved")
	return &response, nil
}

// ListPaymentLinks returns a merchant's links matching the constraints. Each
// record is mapped to its response view concurrently; input order is
// preserved and the first mapping failure fails the whole listing.
func (s *Service) ListPaymentLinks(ctx context.Context, merchantID string, req ListPaymentLinksRequest) (*ListPaymentLinksResponse, error) {
	ctx = s.logg.WithMerchantID(ctx, merchantID)

	links, err := s.store.ListPaymentLinksByMerchant(ctx, merchantID, ListConstraints{
		Limit:          req.Limit,
		CreatedTimeGte: req.CreatedTimeGte,
		CreatedTimeLte: req.CreatedTimeLte,
	})
	if err != nil {
		return nil, err
	}

	views := make([]RetrievePaymentLinkResponse, len(links))
	group, _ := errgroup.WithContext(ctx)
	for i := range links {
		group.Go(func() error {
			view, err := s.buildLinkView(&links[i])
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &ListPaymentLinksResponse{Size: len(views), Data: views}, nil
}

// buildLinkView maps one link record to its response view. The stored config
// blob is validated here so a corrupt record fails its listing loudly instead
// of rendering with silently dropped overrides.
func (s *Service) buildLinkView(link *models.PaymentLink) (RetrievePaymentLinkResponse, error) {
	if _, err := ParsePaymentLinkConfig(link.PaymentLinkConfig); err != nil {
		return RetrievePaymentLinkResponse{}, err
	}
	return RetrievePaymentLinkResponse{
		PaymentLinkID:  link.PaymentLinkID,
		MerchantID:     link.MerchantID,
		LinkToPay:      link.LinkToPay,
		Amount:         link.Amount,
		Currency:       link.Currency,
		Description:    link.Description,
		CreatedAt:      link.CreatedAt,
		LastModifiedAt: link.LastModifiedAt,
		LinkExpiry:     link.MaxAge,
		Status:         EvaluateLinkStatus(link.MaxAge, s.clk),
	}, nil
}
