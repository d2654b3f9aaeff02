package sqlite

import (
	"context"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store/drivers/sqlite/gen"
)

type companiesRepo struct {
	q *gen.Queries
}

func (r *companiesRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	return r.q.CreateCompany(ctx, gen.CreateCompanyParams{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Industry: mapStringNull(c.Industry),
	})
}

func (r *companiesRepo) GetCompanyByID(ctx context.Context, id string) (domain.Company, error) {
	row, err := r.q.GetCompanyByID(ctx, id)
	if err != nil {
		return domain.Company{}, mapNotFound(err)
	}
	return mapCompany(row), nil
}

func (r *companiesRepo) UpdateCompanyProfile(
	ctx context.Context,
	companyID, name, email, industry string,
) error {
	return r.q.UpdateCompanyProfile(ctx, gen.UpdateCompanyProfileParams{
		Name:     name,
		Email:    email,
		Industry: mapStringNull(industry),
		ID:       companyID,
	})
}
