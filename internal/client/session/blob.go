package session

import (
	"encoding/json"
	"errors"
)

var (
	errMalformedBlob = errors.New("malformed session blob")
	errMissingState  = errors.New("session blob has no state")
	errNoTokens      = errors.New("session blob holds no tokens")
)

type blob struct {
	State *Credential `json:"state"`
}

// decodeBlob validates raw and returns its credential. A nil error means the
// blob carries at least one token.
func decodeBlob(raw []byte) (Credential, error) {
	var b blob
	if err := json.Unmarshal(raw, &b); err != nil {
		return Credential{}, errors.Join(errMalformedBlob, err)
	}
	if b.State == nil {
		return Credential{}, errMissingState
	}
	if b.State.AccessToken == "" && b.State.RefreshToken == "" {
		return Credential{}, errNoTokens
	}
	return *b.State, nil
}

func encodeBlob(c Credential) ([]byte, error) {
	return json.Marshal(blob{State: &c})
}

// patchBlob rewrites the token fields of raw in place, leaving every other
// field of the blob and of its state untouched. An empty refreshToken keeps
// the stored one.
func patchBlob(raw []byte, accessToken, refreshToken string) ([]byte, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, errors.Join(errMalformedBlob, err)
	}
	var state map[string]json.RawMessage
	if err := json.Unmarshal(top["state"], &state); err != nil || state == nil {
		return nil, errMissingState
	}

	put := func(k, v string) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		state[k] = b
		return nil
	}
	if err := put("accessToken", accessToken); err != nil {
		return nil, err
	}
	if refreshToken != "" {
		if err := put("refreshToken", refreshToken); err != nil {
			return nil, err
		}
	}

	s, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	top["state"] = s
	return json.Marshal(top)
}
