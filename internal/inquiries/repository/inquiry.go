package repository

import (
	"context"
	"time"

	"jumatrek/internal/store"
	"jumatrek/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

// InquiryRepository has no update or delete: inquiries are immutable.
type InquiryRepository interface {
	Create(ctx context.Context, inq *model.Inquiry) (string, error)
	FindAll(ctx context.Context) ([]*model.Inquiry, error)
}

type inquiryRepository struct {
	gw store.Gateway
}

func NewInquiryRepository(gw store.Gateway) InquiryRepository {
	return &inquiryRepository{gw: gw}
}

func (r *inquiryRepository) Create(ctx context.Context, inq *model.Inquiry) (string, error) {
	inq.ID = ""
	inq.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	id, err := r.gw.Insert(ctx, store.Inquiries, inq)
	if err != nil {
		return "", err
	}
	inq.ID = id
	return id, nil
}

func (r *inquiryRepository) FindAll(ctx context.Context) ([]*model.Inquiry, error) {
	inquiries := []*model.Inquiry{}
	if err := r.gw.Find(ctx, store.Inquiries, bson.M{}, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}
