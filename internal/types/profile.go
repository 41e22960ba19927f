package types

import "encoding/json"

// ProfileMetadata is the parsed content of a kind 0 metadata event.
// Real-world kind 0 content carries arbitrary extra fields; only the
// fields we render are decoded.
type ProfileMetadata struct {
	Name        string `json:"name,omitempty"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Website     string `json:"website,omitempty"`
	About       string `json:"about,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Banner      string `json:"banner,omitempty"`
	Lud06       string `json:"lud06,omitempty"`
	Lud16       string `json:"lud16,omitempty"`
	Nip05       string `json:"nip05,omitempty"`
}

// ParseProfileMetadata decodes kind 0 event content. Malformed content
// yields an empty ProfileMetadata; profile events are untrusted input and
// must degrade rather than reject.
func ParseProfileMetadata(content string) ProfileMetadata {
	var meta ProfileMetadata
	if err := json.Unmarshal([]byte(content), &meta); err != nil {
		return ProfileMetadata{}
	}
	return meta
}
