package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/identity"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/pkg/idx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
)

type OnboardingService struct {
	Store    store.Store
	Identity identity.Provider
}

// SignupCompanyInput carries everything company signup needs. All fields
// except Industry are required.
type SignupCompanyInput struct {
	CompanyName  string
	CompanyEmail string
	Industry     string

	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (in *SignupCompanyInput) normalize() {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.CompanyEmail = strings.ToLower(strings.TrimSpace(in.CompanyEmail))
	in.Industry = strings.TrimSpace(in.Industry)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *SignupCompanyInput) validate() error {
	if in.CompanyName == "" || in.CompanyEmail == "" {
		return ErrInvalidInput
	}
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

// SignupCompany creates a company together with its first admin. The company
// row and the admin member row are written in one transaction; a company
// without an admin never becomes visible. On success the new admin is logged
// in and the session token returned alongside the created records.
func (s *OnboardingService) SignupCompany(
	ctx context.Context,
	in SignupCompanyInput,
) (domain.Company, domain.User, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate before any side effect.
	in.normalize()
	if err := in.validate(); err != nil {
		return domain.Company{}, domain.User{}, "", err
	}

	// 2. Register the admin's credential account.
	identityRef, err := s.Identity.Register(ctx, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return domain.Company{}, domain.User{}, "", ErrEmailTaken
		}
		if errors.Is(err, identity.ErrWeakPassword) {
			return domain.Company{}, domain.User{}, "", ErrInvalidInput
		}
		log.Error("failed to register account for company signup", slog.Any("error", err))
		return domain.Company{}, domain.User{}, "", err
	}

	company := domain.Company{
		ID:       idx.New().String(),
		Name:     in.CompanyName,
		Email:    in.CompanyEmail,
		Industry: in.Industry,
	}
	admin := domain.User{
		ID:          idx.New().String(),
		CompanyID:   company.ID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Role:        domain.RoleAdmin,
		IdentityRef: identityRef,
	}

	// 3. Create company and first admin atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Companies().CreateCompany(ctx, company); err != nil {
			log.Error("failed to create company", slog.Any("error", err))
			return err
		}
		if err := tx.Users().CreateUser(ctx, admin); err != nil {
			log.Error("failed to create first admin",
				slog.String("company_id", company.ID),
				slog.Any("error", err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Company{}, domain.User{}, "", err
	}

	// 4. Log the new admin in.
	token, err := s.Identity.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		// The signup itself succeeded; the admin can still log in manually.
		log.Error("failed to authenticate after signup",
			slog.String("company_id", company.ID),
			slog.Any("error", err),
		)
		token = ""
	}

	log.Info("company signed up",
		slog.String("company_id", company.ID),
		slog.String("admin_user_id", admin.ID),
	)

	return company, admin, token, nil
}
