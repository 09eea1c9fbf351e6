package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dashkit/internal/domain"
	"dashkit/internal/domain/models"
	"dashkit/internal/store"
	"dashkit/internal/utils"
)

const invalidCredentials = "Invalid username or password"

// UserRepository is implemented by the MySQL and key-value user stores.
type UserRepository interface {
	FindByLogin(ctx context.Context, identifier string) (models.Account, error)
	FindByID(ctx context.Context, id domain.ID) (models.Account, error)
	Create(ctx context.Context, acc models.Account) error
	List(ctx context.Context) ([]models.Account, error)
}

var rolePermissions = map[domain.Role][]domain.Permission{
	domain.RoleOwner:  {domain.PermDashboardView},
	domain.RoleAdmin:  {domain.PermDashboardView},
	domain.RoleMember: {domain.PermDashboardView},
}

// DemoUser is a seeded account with its plain-text password.
type DemoUser struct {
	ID       domain.ID
	Name     string
	Email    string
	Username string
	Password string
	Role     domain.Role
	OrgID    string
}

// DemoUsers are the accounts shown on the login page.
var DemoUsers = []DemoUser{
	{ID: "1", Name: "Admin User", Email: "admin@example.com", Username: "admin", Password: "admin123", Role: domain.RoleOwner, OrgID: "org-1"},
	{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Username: "jane", Password: "jane123", Role: domain.RoleAdmin, OrgID: "org-1"},
}

// Claims is the JWT payload.
type Claims struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService signs users in against the user repository and issues
// HS256 tokens. Latencies simulate the round trip of a real identity
// provider and can be zero. With Sessions set, every token is also
// recorded there and Logout revokes it.
type AuthService struct {
	Users         UserRepository
	Sessions      store.KV
	Secret        []byte
	TokenTTL      time.Duration
	LoginLatency  time.Duration
	SignupLatency time.Duration
	HashCost      int
	RequestID     string
	Now           func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) cost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Login matches identifier against username or email.
func (s AuthService) Login(ctx context.Context, identifier, password string) (models.AuthResult, error) {
	if err := wait(ctx, s.LoginLatency); err != nil {
		return models.AuthResult{}, err
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return models.AuthResult{}, domain.UnauthorizedError{Msg: invalidCredentials}
	}
	acc, err := s.Users.FindByLogin(ctx, identifier)
	if domain.IsNotFound(err) {
		utils.LogEvent(s.RequestID, "auth", "login", "unknown user")
		return models.AuthResult{}, domain.UnauthorizedError{Msg: invalidCredentials}
	}
	if err != nil {
		return models.AuthResult{}, domain.InternalError{Msg: "load user", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login", "bad password user_id="+string(acc.ID))
		return models.AuthResult{}, domain.UnauthorizedError{Msg: invalidCredentials}
	}
	res, err := s.issue(ctx, acc)
	if err != nil {
		return models.AuthResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+string(acc.ID))
	return res, nil
}

func sessionKey(uid domain.ID, sessionID string) string {
	return store.UserKey(string(uid), store.KeySession) + ":" + sessionID
}

func (s AuthService) issue(ctx context.Context, acc models.Account) (models.AuthResult, error) {
	now := s.now()
	exp := now.Add(s.TokenTTL)
	sessionID := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: acc.Username,
		Role:     acc.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   string(acc.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return models.AuthResult{}, domain.InternalError{Msg: "sign token", Err: err}
	}
	if s.Sessions != nil {
		if err := store.SetJSON(ctx, s.Sessions, sessionKey(acc.ID, sessionID), exp); err != nil {
			return models.AuthResult{}, domain.InternalError{Msg: "store session", Err: err}
		}
	}
	return models.AuthResult{User: acc.Public(), Token: signed, ExpiresAt: exp}, nil
}

// Signup creates an org-member account. Username defaults to the local
// part of the email.
func (s AuthService) Signup(ctx context.Context, in models.SignupInput) (models.User, error) {
	if err := wait(ctx, s.SignupLatency); err != nil {
		return models.User{}, err
	}
	in.Name = utils.NormalizeSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if in.Name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if !validEmail(in.Email) {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "a valid email is required"}
	}
	if len(in.Password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "password must be at least 6 characters"}
	}
	if in.Username == "" {
		in.Username, _, _ = strings.Cut(in.Email, "@")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "hash password", Err: err}
	}
	acc := models.Account{
		ID:           domain.ID(uuid.NewString()),
		Name:         in.Name,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		OrgID:        "org-1",
		CreatedAt:    s.now().UTC(),
	}
	if err := s.Users.Create(ctx, acc); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "signup", "user_id="+string(acc.ID))
	return acc.Public(), nil
}

// ForgotPassword always succeeds for a well-formed address so callers
// cannot probe which emails are registered.
func (s AuthService) ForgotPassword(ctx context.Context, email string) error {
	if err := wait(ctx, s.SignupLatency); err != nil {
		return err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) {
		return domain.ValidationError{Field: "email", Msg: "a valid email is required"}
	}
	if _, err := s.Users.FindByLogin(ctx, email); err == nil {
		utils.LogEvent(s.RequestID, "auth", "forgot_password", "reset link queued")
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// ParseToken verifies a bearer token.
func (s AuthService) ParseToken(raw string) (domain.RequestContext, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token expired"
		}
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: msg, Err: err}
	}
	if claims.Subject == "" {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return domain.RequestContext{
		UserID:    domain.ID(claims.Subject),
		Username:  claims.Username,
		Role:      claims.Role,
		SessionID: claims.ID,
	}, nil
}

// Authenticate verifies raw and, with Sessions set, that its session has
// not been ended.
func (s AuthService) Authenticate(ctx context.Context, raw string) (domain.RequestContext, error) {
	rc, err := s.ParseToken(raw)
	if err != nil || s.Sessions == nil {
		return rc, err
	}
	_, err = s.Sessions.Get(ctx, sessionKey(rc.UserID, rc.SessionID))
	if errors.Is(err, store.ErrNotFound) {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "session ended"}
	}
	if err != nil {
		return domain.RequestContext{}, domain.InternalError{Msg: "load session", Err: err}
	}
	return rc, nil
}

// Logout ends the session of rc.
func (s AuthService) Logout(ctx context.Context, rc domain.RequestContext) error {
	if rc.Anonymous() {
		return domain.UnauthorizedError{Msg: "not signed in"}
	}
	utils.LogEvent(s.RequestID, "auth", "logout", "user_id="+string(rc.UserID))
	if s.Sessions == nil || rc.SessionID == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, sessionKey(rc.UserID, rc.SessionID))
}

// Me returns the account behind rc.
func (s AuthService) Me(ctx context.Context, rc domain.RequestContext) (models.User, error) {
	if rc.Anonymous() {
		return models.User{}, domain.UnauthorizedError{Msg: "not signed in"}
	}
	acc, err := s.Users.FindByID(ctx, rc.UserID)
	if domain.IsNotFound(err) {
		return models.User{}, domain.UnauthorizedError{Msg: "account no longer exists", Err: err}
	}
	if err != nil {
		return models.User{}, err
	}
	return acc.Public(), nil
}

// SeedDemoUsers creates the demo accounts that do not exist yet.
func (s AuthService) SeedDemoUsers(ctx context.Context) error {
	for _, d := range DemoUsers {
		if _, err := s.Users.FindByLogin(ctx, d.Username); err == nil {
			continue
		} else if !domain.IsNotFound(err) {
			return fmt.Errorf("seed %s: %w", d.Username, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), s.cost())
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.Username, err)
		}
		err = s.Users.Create(ctx, models.Account{
			ID:           d.ID,
			Name:         d.Name,
			Email:        d.Email,
			Username:     d.Username,
			PasswordHash: string(hash),
			Role:         d.Role,
			OrgID:        d.OrgID,
			CreatedAt:    s.now().UTC(),
		})
		if err != nil && !domain.IsConflict(err) {
			return fmt.Errorf("seed %s: %w", d.Username, err)
		}
	}
	return nil
}

// Permissions lists what role may do.
func Permissions(role domain.Role) []domain.Permission {
	return slices.Clone(rolePermissions[role])
}

// Can reports whether the signed-in user holds perm.
func Can(rc domain.RequestContext, perm domain.Permission) bool {
	if rc.Anonymous() {
		return false
	}
	return slices.Contains(rolePermissions[rc.Role], perm)
}

// HasRole reports whether the signed-in user has role.
func HasRole(rc domain.RequestContext, role domain.Role) bool {
	return !rc.Anonymous() && rc.Role == role
}
