// Package services contains server-side business logic. This file implements
// CredentialStore, the only component that reads and writes account rows:
// sign-up, workspace-scoped sign-in verification, lookup and deletion.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/users"
)

// PasswordHasher derives and checks one-way password hashes.
type PasswordHasher interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, encoded string) (bool, error)
}

// CredentialStore creates, verifies and deletes accounts. Every email-based
// operation is scoped by workspace id.
//
// Absent accounts and wrong passwords are reported as a nil user with a nil
// error, never as distinct errors.
type CredentialStore struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	logger      logging.Logger

	// dummyHash is verified against when the account does not exist so that
	// unknown emails cost as much as wrong passwords.
	dummyHash string
}

// NewCredentialStore constructs a CredentialStore over the given pool.
func NewCredentialStore(db dbx.DBTX, m repomanager.RepositoryManager, hasher PasswordHasher, logger logging.Logger) (*CredentialStore, error) {
	secret := common.GenerateRandByteArray(32)
	defer common.WipeByteArray(secret)

	dummy, err := hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("error preparing credential store: %w", asHashingError(err))
	}

	return &CredentialStore{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		logger:      logger.With("module", "credential_store"),
		dummyHash:   dummy,
	}, nil
}

// Create hashes the password, rejects an email already used in the
// workspace and inserts the account.
func (s *CredentialStore) Create(ctx context.Context, input models.CreateUser) (*models.User, error) {
	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)

	if err := validateScope(input.WorkspaceID, email); err != nil {
		return nil, err
	}
	if fullName == "" || utf8.RuneCountInString(fullName) > common.MaxFieldLength {
		return nil, fmt.Errorf("%w: full name must be 1..%d characters", common.ErrorValidation, common.MaxFieldLength)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	existing, err := s.findByEmail(ctx, repo, input.WorkspaceID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn(ctx, "sign-up with existing email", "ws_id", input.WorkspaceID)
		return nil, fmt.Errorf("%w: %s", common.ErrorDuplicateEmail, input.Email)
	}

	// The (ws_id, email) constraint settles concurrent sign-ups that both
	// passed the check above; the repository reports it as ErrorDuplicateEmail.
	user, err := repo.Create(ctx, &users.NewUser{
		WorkspaceID:  input.WorkspaceID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			s.logger.Warn(ctx, "sign-up lost uniqueness race", "ws_id", input.WorkspaceID)
			return nil, fmt.Errorf("%w: %s", common.ErrorDuplicateEmail, input.Email)
		}
		s.logger.Error(ctx, "error creating user", "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "user created", "user_id", user.ID, "ws_id", user.WorkspaceID, "workspace", input.Workspace)
	return user, nil
}

// FindByEmail returns the account with email in the workspace, or nil. An
// email that could never have been stored matches nothing.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string, workspaceID int64) (*models.User, error) {
	email = normalizeEmail(email)
	if err := validateWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if !storableEmail(email) {
		return nil, nil
	}
	return s.findByEmail(ctx, s.repomanager.Users(s.db), workspaceID, email)
}

// Verify checks the sign-in password. It returns the account on a match and
// nil when the account is unknown or the password is wrong. A stored hash
// that cannot be parsed is an ErrorHashing.
func (s *CredentialStore) Verify(ctx context.Context, input models.SignInUser) (*models.User, error) {
	email := normalizeEmail(input.Email)
	if err := validateWorkspace(input.WorkspaceID); err != nil {
		return nil, err
	}

	password := []byte(input.Password)
	defer common.WipeByteArray(password)

	if !storableEmail(email) {
		_, _ = s.hasher.Verify(password, s.dummyHash)
		return nil, nil
	}

	repo := s.repomanager.Users(s.db)
	cred, err := repo.FindCredential(ctx, input.WorkspaceID, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(password, s.dummyHash)
			return nil, nil
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, cred.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unreadable", "user_id", cred.User.ID, "error", err)
		return nil, asHashingError(err)
	}
	if !ok {
		return nil, nil
	}

	user := cred.User
	return &user, nil
}

// Delete removes the account with the given id and reports whether a row
// was removed.
func (s *CredentialStore) Delete(ctx context.Context, userID int64) (bool, error) {
	deleted, err := s.repomanager.Users(s.db).Delete(ctx, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info(ctx, "user deleted", "user_id", userID)
	}
	return deleted, nil
}

// DeleteByEmail removes the account with email in the workspace and reports
// whether a row was removed.
func (s *CredentialStore) DeleteByEmail(ctx context.Context, email string, workspaceID int64) (bool, error) {
	email = normalizeEmail(email)
	if err := validateWorkspace(workspaceID); err != nil {
		return false, err
	}
	if !storableEmail(email) {
		return false, nil
	}

	deleted, err := s.repomanager.Users(s.db).DeleteByEmail(ctx, workspaceID, email)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info(ctx, "user deleted", "ws_id", workspaceID)
	}
	return deleted, nil
}

// --- helpers below ---

func (s *CredentialStore) findByEmail(ctx context.Context, repo users.Repository, workspaceID int64, email string) (*models.User, error) {
	user, err := repo.FindByEmail(ctx, workspaceID, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *CredentialStore) hash(password string) (string, error) {
	b := []byte(password)
	defer common.WipeByteArray(b)

	hash, err := s.hasher.Hash(b)
	if err != nil {
		return "", asHashingError(err)
	}
	return hash, nil
}

func asHashingError(err error) error {
	if errors.Is(err, common.ErrorHashing) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrorHashing, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateWorkspace(workspaceID int64) error {
	if workspaceID <= 0 {
		return fmt.Errorf("%w: workspace id must be positive", common.ErrorValidation)
	}
	return nil
}

// storableEmail reports whether a normalised email fits the email column.
func storableEmail(email string) bool {
	return email != "" && utf8.RuneCountInString(email) <= common.MaxFieldLength
}

func validateScope(workspaceID int64, email string) error {
	if err := validateWorkspace(workspaceID); err != nil {
		return err
	}
	if !storableEmail(email) {
		return fmt.Errorf("%w: email must be 1..%d characters", common.ErrorValidation, common.MaxFieldLength)
	}
	return nil
}
