package feed

import (
	"strings"

	"nostr-view/internal/cache"
	"nostr-view/internal/nips"
	"nostr-view/internal/render"
	"nostr-view/internal/types"
)

// User is a renderable profile built from the most recent kind 0 metadata
// event for a pubkey.
type User struct {
	Name        string
	Username    string
	DisplayName string
	Website     string
	About       string
	AboutHTML   string
	Picture     string
	Banner      string
	Lud06       string
	Lud16       string
	Nip05       string
	Pubkey      string
	Npub        string
	CreatedAt   int64
}

// BuildUser maps profile metadata field by field with default-if-absent
// semantics. Construction warms the display-name cache for the subject
// pubkey as a side effect; rendering elsewhere depends on that entry being
// a cheap lookup, not on this call having happened.
func BuildUser(meta types.ProfileMetadata, createdAt int64, pubkey string, names cache.NameStore, renderer *render.Renderer) *User {
	user := &User{
		Name:      meta.Name,
		Username:  meta.Username,
		Website:   clickableWebsite(meta.Website),
		About:     meta.About,
		Banner:    meta.Banner,
		Lud06:     meta.Lud06,
		Lud16:     meta.Lud16,
		Nip05:     meta.Nip05,
		Pubkey:    pubkey,
		CreatedAt: createdAt,
	}

	user.Npub = encodeOr(nips.EncodePubkey, pubkey)

	// Display name preference order: explicit display name, name, username,
	// then the encoded pubkey.
	switch {
	case meta.DisplayName != "":
		user.DisplayName = meta.DisplayName
	case meta.Name != "":
		user.DisplayName = meta.Name
	case meta.Username != "":
		user.DisplayName = meta.Username
	default:
		user.DisplayName = user.Npub
	}

	user.Picture = meta.Picture
	if user.Picture == "" {
		user.Picture = DefaultAvatarURL
	}

	// Profile bios carry the same reference micro-language as notes; render
	// with an empty thread context.
	user.AboutHTML = renderer.Render(types.KindTextNote, meta.About, nips.ThreadContext{})

	names.SetName(pubkey, user.DisplayName)

	return user
}

// clickableWebsite normalizes a website value to an absolute URL. Values
// already carrying an http/https scheme pass through; empty stays empty.
func clickableWebsite(link string) string {
	if link == "" {
		return link
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "http://" + link
}
