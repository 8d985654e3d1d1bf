package repository

import (
	"context"
	"time"

	"jumatrek/internal/store"
	"jumatrek/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *model.AdminUser) (string, error)
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
}

type adminUserRepository struct {
	gw store.Gateway
}

func NewAdminUserRepository(gw store.Gateway) AdminUserRepository {
	return &adminUserRepository{gw: gw}
}

// Create fails with store.ErrDuplicate when the email is taken.
func (r *adminUserRepository) Create(ctx context.Context, user *model.AdminUser) (string, error) {
	user.ID = ""
	user.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	id, err := r.gw.Insert(ctx, store.AdminUsers, user)
	if err != nil {
		return "", err
	}
	user.ID = id
	return id, nil
}

func (r *adminUserRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.gw.FindOneBy(ctx, store.AdminUsers, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
