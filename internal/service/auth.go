package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"blogger/internal/apperrors"
	"blogger/internal/model"
	"blogger/internal/repository"
	"blogger/internal/token"
)

// Auth owns registration, login and token lifecycle. It is the only
// component that ever sees a plaintext password.
type Auth struct {
	users   repository.Users
	tokens  *token.Manager
	revoker token.Revoker
	cost    int
}

func NewAuth(users repository.Users, tokens *token.Manager, revoker token.Revoker, bcryptCost int) *Auth {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Auth{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		cost:    bcryptCost,
	}
}

type field struct {
	name  string
	value string
}

// requireFields reports every missing field at once, not just the first.
func requireFields(fields ...field) error {
	missing := []string{}
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperrors.New(apperrors.CodeValidation,
			"the following fields are required: "+strings.Join(missing, ", "))
	}
	return nil
}

// invalidCredentials is shared by the unknown-email and wrong-password
// paths so a caller cannot distinguish them.
func invalidCredentials() error {
	return apperrors.New(apperrors.CodeUnauthorized, "invalid email or password")
}

// Register creates a user and signs them in. Email uniqueness is checked
// before username; the storage layer's unique indexes back both checks.
func (s *Auth) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if err := requireFields(
		field{"username", username},
		field{"email", email},
		field{"password", password},
	); err != nil {
		return nil, "", err
	}

	if _, err := s.users.UserByEmail(ctx, email); err == nil {
		return nil, "", apperrors.New(apperrors.CodeConflict, "email is already registered")
	} else if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, "", err
	}

	if _, err := s.users.UserByUsername(ctx, username); err == nil {
		return nil, "", apperrors.New(apperrors.CodeConflict, "username is already taken")
	} else if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		return nil, "", err
	}

	signed, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

// Login verifies the credentials and issues a fresh token.
func (s *Auth) Login(ctx context.Context, email, password string) (string, error) {
	if err := requireFields(
		field{"email", email},
		field{"password", password},
	); err != nil {
		return "", err
	}

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return "", invalidCredentials()
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", invalidCredentials()
	}

	signed, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Logout revokes the token for whatever lifetime it has left. The denylist
// entry expires with the token itself.
func (s *Auth) Logout(ctx context.Context, raw string) error {
	if raw == "" {
		return apperrors.New(apperrors.CodeUnauthorized, "missing authentication token")
	}
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return err
	}
	return s.revoker.Revoke(ctx, claims.ID, s.tokens.Remaining(claims))
}

// Authenticate resolves a bearer token to an existing user. A valid token
// whose user has since been deleted, or whose ID has been revoked, is
// rejected the same way an invalid one is.
func (s *Auth) Authenticate(ctx context.Context, raw string) (*model.User, error) {
	if raw == "" {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "missing authentication token")
	}
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "token revoked")
	}

	user, err := s.users.UserByID(ctx, claims.UserID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, apperrors.New(apperrors.CodeUnauthorized, "invalid authentication token")
		}
		return nil, err
	}
	return user, nil
}
