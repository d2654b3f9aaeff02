package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/pkg/slogx"
)

type CompanyService struct {
	Store store.Store
}

// GetCompany returns the actor's own company. Any member may read it.
func (s *CompanyService) GetCompany(ctx context.Context, actor domain.Principal) (domain.Company, error) {
	company, err := s.Store.Companies().GetCompanyByID(ctx, actor.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Company{}, ErrNotFound
		}
		return domain.Company{}, err
	}
	return company, nil
}

// UpdateProfile mutates the company's name, contact email and industry.
// Admin-only.
func (s *CompanyService) UpdateProfile(
	ctx context.Context,
	actor domain.Principal,
	name, email, industry string,
) (domain.Company, error) {
	log := slogx.FromContext(ctx)

	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return domain.Company{}, err
	}

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	industry = strings.TrimSpace(industry)
	if name == "" || email == "" {
		return domain.Company{}, ErrInvalidInput
	}

	if err := s.Store.Companies().UpdateCompanyProfile(ctx, actor.CompanyID, name, email, industry); err != nil {
		log.Error("failed to update company profile",
			slog.String("company_id", actor.CompanyID),
			slog.Any("error", err),
		)
		return domain.Company{}, err
	}

	log.Info("company profile updated", slog.String("company_id", actor.CompanyID))

	return s.GetCompany(ctx, actor)
}
