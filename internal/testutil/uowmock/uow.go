package uowmock

import (
	"context"

	"github.com/rifky200804/ez-request-web/internal/domain/request"
	"github.com/rifky200804/ez-request-web/internal/domain/uow"
)

// UoW runs callbacks against the given repos without any real
// transaction. WithinRequestTx fetches the request through the repo's
// for-update getter, mirroring the gorm implementation.
type UoW struct {
	Repos uow.Repos
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (u *UoW) WithinTx(_ context.Context, fn func(r uow.Repos) error) error {
	return fn(u.Repos)
}

func (u *UoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, sr *request.ServiceRequest) error) error {
	sr, err := u.Repos.Requests.GetByRequestIDForUpdate(ctx, requestID)
	if err != nil {
		return err
	}
	return fn(u.Repos, sr)
}
