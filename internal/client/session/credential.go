package session

import (
	"encoding/json"
	"strings"
)

type Role string

const (
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

// ParseRole maps an access level or token claim to a Role. "client" means
// RoleClient; any other non-empty value is a staff access level.
func ParseRole(raw string) (Role, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "":
		return "", false
	case string(RoleClient):
		return RoleClient, true
	default:
		return RoleStaff, true
	}
}

// Profile is the subset of the stored profile the client relies on. Other
// fields are kept verbatim in Extra.
type Profile struct {
	AccessLevel     string `json:"accessLevel,omitempty"`
	OrganisationRef string `json:"organisationRef,omitempty"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (p *Profile) UnmarshalJSON(b []byte) error {
	type plain Profile
	if err := json.Unmarshal(b, (*plain)(p)); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range []string{"accessLevel", "organisationRef", "name", "email"} {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}
	return nil
}

func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+4)
	for k, v := range p.Extra {
		out[k] = v
	}
	set := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	set("accessLevel", p.AccessLevel)
	set("organisationRef", p.OrganisationRef)
	set("name", p.Name)
	set("email", p.Email)
	return json.Marshal(out)
}

// Credential is the decoded "state" of a session blob.
type Credential struct {
	AccessToken     string   `json:"accessToken"`
	RefreshToken    string   `json:"refreshToken"`
	Profile         *Profile `json:"profileData,omitempty"`
	IsAuthenticated bool     `json:"isAuthenticated"`
}

// Snapshot is a credential together with the storage key it was read from.
type Snapshot struct {
	Key        string
	Credential Credential
}

// Role resolves the snapshot's role; see ResolveRole.
func (s Snapshot) Role() RoleResolution {
	return ResolveRole(s.Credential)
}
