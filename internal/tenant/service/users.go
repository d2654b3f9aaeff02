package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// ListMembers returns the actor's company roster, newest first. Every member
// can read their own company's roster; the role check still rejects
// principals whose role is outside the closed enum.
func (s *UserService) ListMembers(ctx context.Context, actor domain.Principal) ([]domain.User, error) {
	if err := RequireRole(actor, domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.Store.Users().ListUsersByCompany(ctx, actor.CompanyID)
}

// ChangeRole sets a member's role. Admin-only. Admins cannot change their
// own role, which keeps every company with at least one admin.
func (s *UserService) ChangeRole(
	ctx context.Context,
	actor domain.Principal,
	userID string,
	role domain.Role,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return domain.User{}, err
	}
	if !role.Valid() {
		return domain.User{}, ErrInvalidRole
	}
	if userID == actor.UserID {
		log.Warn("admin attempted to change own role",
			slog.String("user_id", actor.UserID),
		)
		return domain.User{}, ErrSelfAction
	}

	target, err := s.fetchCompanyMember(ctx, actor, userID)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Store.Users().UpdateUserRole(ctx, target.ID, role); err != nil {
		log.Error("failed to update member role",
			slog.String("target_user_id", target.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("member role changed",
		slog.String("target_user_id", target.ID),
		slog.String("company_id", target.CompanyID),
		slog.String("from", target.Role.String()),
		slog.String("to", role.String()),
	)

	target.Role = role
	return target, nil
}

// RemoveMember deletes a member record. Admin-only, and never the acting
// admin themselves. The credential account is left alone; without a member
// record it grants nothing.
func (s *UserService) RemoveMember(
	ctx context.Context,
	actor domain.Principal,
	userID string,
) error {
	log := slogx.FromContext(ctx)

	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return err
	}
	if userID == actor.UserID {
		log.Warn("admin attempted to remove themselves",
			slog.String("user_id", actor.UserID),
		)
		return ErrSelfAction
	}

	target, err := s.fetchCompanyMember(ctx, actor, userID)
	if err != nil {
		return err
	}

	if err := s.Store.Users().DeleteUser(ctx, target.ID); err != nil {
		log.Error("failed to remove member",
			slog.String("target_user_id", target.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member removed",
		slog.String("target_user_id", target.ID),
		slog.String("company_id", target.CompanyID),
	)
	return nil
}

// fetchCompanyMember loads a user and enforces tenant isolation. A user in
// another company reads as not-found so cross-tenant probing can't confirm
// that an id exists.
func (s *UserService) fetchCompanyMember(
	ctx context.Context,
	actor domain.Principal,
	userID string,
) (domain.User, error) {
	target, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	if err := RequireSameCompany(actor, target.CompanyID); err != nil {
		return domain.User{}, ErrNotFound
	}
	return target, nil
}
