package http

import (
	"time"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

func userView(u domain.User) tenantsdk.UserInfo {
	return tenantsdk.UserInfo{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func companyView(c domain.Company) tenantsdk.CompanyInfo {
	return tenantsdk.CompanyInfo{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Industry:  c.Industry,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func invitationView(inv domain.Invitation, now time.Time) tenantsdk.InvitationInfo {
	status := inv.Status
	if status == domain.InvitationPending && inv.Expired(now) {
		status = "expired"
	}
	return tenantsdk.InvitationInfo{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      inv.Role.String(),
		Status:    status,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}
