// Package feed assembles render-ready domain objects (Post, Zap, User) from
// raw protocol events. Builders are all-or-nothing: absent upstream fields
// take documented defaults, never an error, because events are untrusted
// input that must degrade gracefully.
package feed

import (
	"nostr-view/internal/cache"
	"nostr-view/internal/nips"
	"nostr-view/internal/render"
	"nostr-view/internal/types"
)

// DefaultAvatarURL is the placeholder avatar for pubkeys with no cached picture.
const DefaultAvatarURL = "https://axiumradonmitigations.com/wp-content/uploads/2015/01/icon-user-default.png"

// Post is a renderable text note. All fields are fixed at construction
// except ReplyCount, which an external aggregation step may update via
// SetReplyCount.
type Post struct {
	Kind         int
	Pubkey       string
	Npub         string
	NoteID       string
	NostrNoteID  string // note1... encoding of NoteID
	NostrEventID string // nevent1... pointer to NoteID
	CreatedAt    int64
	FromNow      string
	ContentHTML  string
	DisplayName  string
	Picture      string
	ReplyCount   int
	ReplyTargets map[string]struct{} // event IDs this note replies into
}

// BuildPost assembles a Post from a raw text-note event and its resolved
// thread context.
func BuildPost(evt types.Event, thread nips.ThreadContext, names cache.NameStore, renderer *render.Renderer) *Post {
	post := &Post{
		Kind:         evt.Kind,
		Pubkey:       evt.PubKey,
		NoteID:       evt.ID,
		CreatedAt:    evt.CreatedAt,
		FromNow:      FormatRelativeTime(evt.CreatedAt),
		ReplyTargets: make(map[string]struct{}),
	}

	// Encoded identifiers; a malformed pubkey or id falls back to its hex form.
	post.Npub = encodeOr(nips.EncodePubkey, evt.PubKey)
	post.NostrNoteID = encodeOr(nips.EncodeNote, evt.ID)
	if nevent, err := nips.EncodeEventPointer(nips.EventPointer{ID: evt.ID}); err == nil {
		post.NostrEventID = nevent
	} else {
		post.NostrEventID = evt.ID
	}

	post.DisplayName, post.Picture = resolveIdentity(names, evt.PubKey, post.Npub)

	post.ContentHTML = renderer.Render(evt.Kind, evt.Content, thread)

	if thread.Reply != nil {
		post.ReplyTargets[thread.Reply.ID] = struct{}{}
	}
	if thread.Root != nil {
		post.ReplyTargets[thread.Root.ID] = struct{}{}
	}

	return post
}

// SetReplyCount updates the observed reply count. The only mutation a Post
// supports after construction.
func (p *Post) SetReplyCount(count int) {
	p.ReplyCount = count
}

// resolveIdentity looks up display name and avatar for a pubkey, defaulting
// to the encoded pubkey and the placeholder avatar.
func resolveIdentity(names cache.NameStore, pubkey, fallbackName string) (string, string) {
	name := fallbackName
	picture := DefaultAvatarURL
	if entry, ok := names.Get(pubkey); ok {
		if entry.Name != "" {
			name = entry.Name
		}
		if entry.Picture != "" {
			picture = entry.Picture
		}
	}
	return name, picture
}

func encodeOr(encode func(string) (string, error), hexValue string) string {
	if encoded, err := encode(hexValue); err == nil {
		return encoded
	}
	return hexValue
}
