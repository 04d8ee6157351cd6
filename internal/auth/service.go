package auth

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo   UserRepository
	tokens *Tokens
	log    logrus.FieldLogger
}

func NewService(repo UserRepository, tokens *Tokens, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, tokens: tokens, log: log.WithField("component", "auth")}
}

// Session is the register/login response.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Register creates a customer account. Admins come only from EnsureAdmin.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Session, error) {
	u, err := s.create(ctx, name, email, password, RoleCustomer)
	if err != nil {
		return nil, err
	}
	return s.session(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(u)
}

// Authenticate resolves a bearer token to a stored user.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, claims.UserID)
}

func (s *Service) Users(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// EnsureAdmin seeds the back-office account; an existing email is left alone.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.create(ctx, "Admin", email, password, RoleAdmin)
	if errors.Is(err, ErrEmailTaken) {
		return nil
	}
	if err == nil {
		s.log.WithField("email", normalizeEmail(email)).Info("admin account created")
	}
	return err
}

func (s *Service) create(ctx context.Context, name, email, password string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	u := &User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) session(u *User) (*Session, error) {
	token, err := s.tokens.Generate(u)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
