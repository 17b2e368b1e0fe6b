package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
	"github.com/dmitrijs2005/bizadmin/internal/client/session"
	"github.com/dmitrijs2005/bizadmin/internal/common"
)

var (
	ErrMissingCredentials   = errors.New("email and password are required")
	ErrInvalidLoginResponse = errors.New("login response has no access token")
	ErrNotLoggedIn          = errors.New("not logged in")
)

// SessionStore is the part of session.Store the auth service needs.
type SessionStore interface {
	Load(ctx context.Context) (session.Snapshot, bool, error)
	Save(ctx context.Context, c session.Credential) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the role's login endpoint and persist the
//     returned credential under the current storage key.
//   - Logout: wipe the stored credential.
//   - Whoami: describe the stored session without calling the server.
type AuthService interface {
	Login(ctx context.Context, role session.Role, email string, password []byte) (*Identity, error)
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) (*Identity, error)
}

// Identity describes the signed-in user as far as the client knows it.
type Identity struct {
	Email        string
	Name         string
	Organisation string
	Role         session.RoleResolution
	StorageKey   string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	Profile      *session.Profile `json:"profileData"`
	User         *session.Profile `json:"user"`
}

type authService struct {
	client client.Client
	store  SessionStore
}

func NewAuthService(c client.Client, store SessionStore) AuthService {
	return &authService{client: c, store: store}
}

// LoginPath returns the login endpoint for role.
func LoginPath(role session.Role) string {
	if role == session.RoleClient {
		return common.ClientLoginPath
	}
	return common.StaffLoginPath
}

// Login posts the credentials with no token attached and stores the result.
// The password buffer is wiped before returning.
func (a *authService) Login(ctx context.Context, role session.Role, email string, password []byte) (*Identity, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return nil, ErrMissingCredentials
	}

	resp, err := a.client.Do(ctx, client.Request{
		Method:   http.MethodPost,
		Path:     LoginPath(role),
		Body:     loginRequest{Email: email, Password: string(password)},
		SkipAuth: true,
	})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	var out loginResponse
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if out.AccessToken == "" {
		return nil, ErrInvalidLoginResponse
	}

	profile := out.Profile
	if profile == nil {
		profile = out.User
	}
	if profile == nil {
		profile = &session.Profile{}
	}
	if profile.Email == "" {
		profile.Email = email
	}
	// Client logins do not always carry an access level; without one the
	// refresh would go to the staff endpoint.
	if profile.AccessLevel == "" && role == session.RoleClient {
		profile.AccessLevel = string(session.RoleClient)
	}

	cred := session.Credential{
		AccessToken:     out.AccessToken,
		RefreshToken:    out.RefreshToken,
		Profile:         profile,
		IsAuthenticated: true,
	}
	if err := a.store.Save(ctx, cred); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	return identityOf(session.Snapshot{Key: common.SessionStorageKey, Credential: cred}), nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Whoami(ctx context.Context) (*Identity, error) {
	snap, ok, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return identityOf(snap), nil
}

func identityOf(snap session.Snapshot) *Identity {
	id := &Identity{Role: snap.Role(), StorageKey: snap.Key}
	if p := snap.Credential.Profile; p != nil {
		id.Email = p.Email
		id.Name = p.Name
		id.Organisation = p.OrganisationRef
	}
	return id
}
