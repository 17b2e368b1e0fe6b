package session

import "github.com/golang-jwt/jwt/v5"

// RoleSource records which step of the lookup chain produced a role.
type RoleSource string

const (
	SourceProfile      RoleSource = "profile"
	SourceRefreshToken RoleSource = "refresh_token"
	SourceAccessToken  RoleSource = "access_token"
	SourceNone         RoleSource = "none"
)

// RoleResolution is either Resolved with a Role and its Source, or unknown.
type RoleResolution struct {
	Role     Role
	Source   RoleSource
	Resolved bool
}

// RoleOrDefault returns the resolved role, or RoleStaff when unknown.
func (r RoleResolution) RoleOrDefault() Role {
	if !r.Resolved {
		return RoleStaff
	}
	return r.Role
}

// ResolveRole determines the caller's role from, in order: the stored
// profile's access level, the refresh token's "role" claim, the access
// token's "role" claim. If none yields a role the result is unresolved.
func ResolveRole(c Credential) RoleResolution {
	if c.Profile != nil {
		if r, ok := ParseRole(c.Profile.AccessLevel); ok {
			return RoleResolution{Role: r, Source: SourceProfile, Resolved: true}
		}
	}
	if r, ok := roleFromToken(c.RefreshToken); ok {
		return RoleResolution{Role: r, Source: SourceRefreshToken, Resolved: true}
	}
	if r, ok := roleFromToken(c.AccessToken); ok {
		return RoleResolution{Role: r, Source: SourceAccessToken, Resolved: true}
	}
	return RoleResolution{Source: SourceNone}
}

// roleFromToken reads the "role" claim without verifying the signature; the
// client has no key to verify with and the server re-checks it anyway.
func roleFromToken(token string) (Role, bool) {
	if token == "" {
		return "", false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", false
	}
	raw, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return ParseRole(raw)
}
