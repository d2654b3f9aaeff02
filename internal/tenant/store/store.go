package store

import (
	"context"
	"errors"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction entry point for the two multi-write operations
// this service has (company signup and invitation acceptance).
type Store interface {
	Companies() Companies
	Users() Users
	Invitations() Invitations
	Accounts() Accounts
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Companies interface {
	// CreateCompany inserts a new company (id is provided by the app via ULID).
	CreateCompany(ctx context.Context, c domain.Company) error

	// GetCompanyByID returns a company by id.
	GetCompanyByID(ctx context.Context, id string) (domain.Company, error)

	// UpdateCompanyProfile mutates name/email/industry and bumps updated_at.
	UpdateCompanyProfile(ctx context.Context, companyID, name, email, industry string) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByIdentityRef resolves the principal record linked to an
	// identity-provider account. Used on every authenticated request.
	GetUserByIdentityRef(ctx context.Context, identityRef string) (domain.User, error)

	// ListUsersByCompany returns all members of a company, newest first.
	ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error)

	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserRole sets the role and bumps updated_at.
	UpdateUserRole(ctx context.Context, userID string, role domain.Role) error

	// DeleteUser removes a user row. Invitations they issued keep their
	// history with created_by cleared (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation (token_hash is the SHA-256
	// fingerprint of the opaque token, never the token itself).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByTokenHash returns an invitation by fingerprint,
	// whatever its status. Expiry and status checks belong to the service
	// so that "expired" can be derived at read time.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// ListInvitationsByCompany returns a company's invitations, newest first.
	ListInvitationsByCompany(ctx context.Context, companyID string) ([]domain.Invitation, error)

	// MarkInvitationAccepted flips status pending->accepted and records the
	// created user, returning the number of rows changed. A zero count means
	// the invitation was concurrently consumed; callers must treat that as a
	// conflict and roll back.
	MarkInvitationAccepted(ctx context.Context, invitationID, acceptedByUserID string) (int64, error)
}

type Accounts interface {
	// CreateAccount inserts a new identity account (id is a UUID).
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by its identity reference.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during authentication.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns a session by id.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// RevokeSession flips revoked and bumps updated_at.
	RevokeSession(ctx context.Context, id string) error

	// DeleteExpiredSessions is housekeeping; invitations are never deleted
	// but sessions have no history value.
	DeleteExpiredSessions(ctx context.Context) error
}
