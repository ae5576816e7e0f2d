package paymentlinks

import (
	"context"
	"errors"

	"github.com/riffus/hyperswitch/pkg/db/models"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a payment-link store bound to the provided DB.
func NewRepository(db *gorm.DB) Store {
	return &repository{db: db}
}

func (r *repository) FindPaymentLinkByID(ctx context.Context, paymentLinkID string) (*models.PaymentLink, error) {
	var link models.PaymentLink
	err := r.db.WithContext(ctx).
		Where("payment_link_id = ?", paymentLinkID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment link not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment link")
	}
	return &link, nil
}

func (r *repository) FindPaymentIntentByIDAndMerchant(ctx context.Context, paymentID, merchantID string) (*models.PaymentIntent, error) {
	var intent models.PaymentIntent
	err := r.db.WithContext(ctx).
		Where("payment_id = ? AND merchant_id = ?", paymentID, merchantID).
		First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment intent")
	}
	return &intent, nil
}

func (r *repository) FindMerchantAccountByID(ctx context.Context, merchantID string) (*models.MerchantAccount, error) {
	var merchant models.MerchantAccount
	err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		First(&merchant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "merchant account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load merchant account")
	}
	return &merchant, nil
}

func (r *repository) ListPaymentLinksByMerchant(ctx context.Context, merchantID string, constraints ListConstraints) ([]models.PaymentLink, error) {
	query := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC")

	if constraints.CreatedTimeGte != nil {
		query = query.Where("created_at >= ?", *constraints.CreatedTimeGte)
	}
	if constraints.CreatedTimeLte != nil {
		query = query.Where("created_at <= ?", *constraints.CreatedTimeLte)
	}
	if constraints.Limit > 0 {
		query = query.Limit(constraints.Limit)
	}

	var links []models.PaymentLink
	if err := query.Find(&links).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payment links")
	}
	return links, nil
}
