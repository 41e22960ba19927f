// Package render implements the content transform pipeline: free-form note
// text is rewritten pass by pass into HTML, resolving the embedded reference
// micro-language (index mentions, hashtags, bare URLs, lightning invoices,
// nostr: URIs) against thread context and cached display names.
package render

import (
	"fmt"
	"html"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"nostr-view/internal/cache"
	"nostr-view/internal/lightning"
	"nostr-view/internal/nips"
	"nostr-view/internal/types"
)

// Index mention regex - matches NIP-08 style #[0] placeholders
var indexMentionRegex = regexp.MustCompile(`#\[\d+\]`)

// Lightning invoice regex - matches lightning: URIs and bare lnbc invoices
var invoiceRegex = regexp.MustCompile(`(lightning:|lnbc)[a-z0-9]+`)

// Hashtag regex
var hashtagRegex = regexp.MustCompile(`#\w+`)

// Bare URL regex, permissive over the URL character class
var urlRegex = regexp.MustCompile(`(?i)\bhttps?://[-A-Za-z0-9+&@#/%?=~_|!:,.;]*[-A-Za-z0-9+&@#/%=~_|]`)

// Nostr reference regex - matches nostr:npub1..., nostr:note1..., nostr:nevent1...
var nostrRefRegex = regexp.MustCompile(`nostr:[a-z0-9]+`)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".gif", ".gifv"}
var videoExtensions = []string{".mp4", ".mov"}

// Renderer rewrites raw note content into an HTML fragment. It is a pure
// function of its inputs apart from reads through the name store; it never
// fails, whatever the content looks like.
type Renderer struct {
	names cache.NameStore
}

// New creates a Renderer backed by the given display-name store.
func New(names cache.NameStore) *Renderer {
	return &Renderer{names: names}
}

// Render runs the transform passes in order. Every substitution is stashed
// behind a NUL-delimited placeholder until all passes have run, so markup
// emitted by one pass is never re-scanned by a later one (an escaped quote
// in a display name would otherwise read as a #39 hashtag). Per-token parse
// failures leave the token unmodified.
func (r *Renderer) Render(kind int, content string, thread nips.ThreadContext) string {
	if kind == types.KindRepost {
		content = r.repostContent(thread)
	}
	// NUL delimits stashed fragments and never appears in legitimate content.
	content = strings.ReplaceAll(content, "\x00", "")

	stash := &fragmentStash{}
	content = r.replaceIndexMentions(content, thread.Profiles, stash)
	content = r.replaceInvoices(content, stash)
	content = r.replaceHashtags(content, stash)
	content = r.linkify(content, stash)
	content = r.replaceNostrRefs(content, stash)
	return stash.expand(content)
}

// placeholderRegex matches the markers fragmentStash hands out.
var placeholderRegex = regexp.MustCompile("\x00F(\\d+)\x00")

// fragmentStash parks emitted HTML fragments out of reach of later passes.
type fragmentStash struct {
	fragments []string
}

// put stores a fragment and returns the placeholder to splice in its place.
func (s *fragmentStash) put(fragment string) string {
	s.fragments = append(s.fragments, fragment)
	return fmt.Sprintf("\x00F%d\x00", len(s.fragments)-1)
}

// expand restores every placeholder to its stashed fragment.
func (s *fragmentStash) expand(content string) string {
	return placeholderRegex.ReplaceAllStringFunc(content, func(marker string) string {
		i, err := strconv.Atoi(marker[2 : len(marker)-1])
		if err != nil || i >= len(s.fragments) {
			return marker
		}
		return s.fragments[i]
	})
}

// repostContent replaces a kind 6 event's content with a short reference to
// the thread root. The original content field is ignored entirely.
func (r *Renderer) repostContent(thread nips.ThreadContext) string {
	if thread.Root != nil {
		if nevent, err := nips.EncodeEventPointer(*thread.Root); err == nil {
			return "re: nostr:" + nevent
		}
	}
	return "repost"
}

// replaceIndexMentions substitutes #[i] placeholders with profile links.
// The correspondence is positional, so the token count must match the
// profile count exactly; on mismatch the whole pass is skipped rather than
// guessing a partial mapping.
func (r *Renderer) replaceIndexMentions(content string, profiles []nips.ProfileRef, stash *fragmentStash) string {
	tokens := indexMentionRegex.FindAllString(content, -1)
	if len(tokens) == 0 || len(tokens) != len(profiles) {
		if len(tokens) != 0 {
			slog.Debug("index mention count mismatch, skipping substitution",
				"tokens", len(tokens), "profiles", len(profiles))
		}
		return content
	}

	i := 0
	return indexMentionRegex.ReplaceAllStringFunc(content, func(string) string {
		pubkey := profiles[i].Pubkey
		i++
		npub, err := nips.EncodePubkey(pubkey)
		if err != nil {
			npub = pubkey
		}
		return stash.put(wrapLink(r.userLabel(pubkey), "/users/"+npub))
	})
}

// replaceInvoices renders an invoice card for every lightning invoice token.
// The card is emitted whether or not the amount decodes.
func (r *Renderer) replaceInvoices(content string, stash *fragmentStash) string {
	return invoiceRegex.ReplaceAllStringFunc(content, func(invoice string) string {
		return stash.put(r.invoiceCard(invoice))
	})
}

// replaceHashtags links #tag tokens to the tag feed, label kept as written.
func (r *Renderer) replaceHashtags(content string, stash *fragmentStash) string {
	return hashtagRegex.ReplaceAllStringFunc(content, func(tag string) string {
		return stash.put(wrapLink(tag, "/feed/"+strings.TrimPrefix(tag, "#")))
	})
}

// linkify wraps bare URLs: known image extensions become inline images,
// known video extensions become players, everything else an anchor opening
// in a new context. Each match is classified independently.
func (r *Renderer) linkify(content string, stash *fragmentStash) string {
	return urlRegex.ReplaceAllStringFunc(content, func(url string) string {
		lower := strings.ToLower(url)
		for _, ext := range imageExtensions {
			if strings.HasSuffix(lower, ext) {
				return stash.put(fmt.Sprintf(`<p><img src="%s" /></p>`, html.EscapeString(url)))
			}
		}
		for _, ext := range videoExtensions {
			if strings.HasSuffix(lower, ext) {
				return stash.put(fmt.Sprintf(`<p><video controls><source src="%s#t=0.1" type="video/mp4"></video></p>`, html.EscapeString(url)))
			}
		}
		escaped := html.EscapeString(url)
		return stash.put(fmt.Sprintf(`<p><a href="%s" target="_blank" rel="noopener">%s</a></p>`, escaped, escaped))
	})
}

// replaceNostrRefs resolves nostr: URIs by payload prefix. A decode failure
// leaves that token as-is and never aborts the remaining tokens.
func (r *Renderer) replaceNostrRefs(content string, stash *fragmentStash) string {
	if !strings.Contains(content, "nostr:") {
		return content
	}
	return nostrRefRegex.ReplaceAllStringFunc(content, func(match string) string {
		payload := strings.TrimPrefix(match, "nostr:")
		switch {
		case strings.HasPrefix(payload, "npub1"):
			pubkey, err := nips.DecodePubkey(payload)
			if err != nil {
				return match
			}
			return stash.put(wrapLink(Elide(r.userLabel(pubkey)), "/users/"+payload))
		case strings.HasPrefix(payload, "nevent1"):
			return stash.put(wrapLink(Elide(payload), "/posts/"+payload))
		case strings.HasPrefix(payload, "note1"):
			id, err := nips.DecodeNote(payload)
			if err != nil {
				return match
			}
			nevent, err := nips.EncodeEventPointer(nips.EventPointer{ID: id})
			if err != nil {
				return match
			}
			return stash.put(wrapLink(Elide(payload), "/posts/"+nevent))
		}
		return match
	})
}

// userLabel resolves a pubkey to "@name" through the name store, falling
// back to the npub encoding when no name is cached.
func (r *Renderer) userLabel(pubkey string) string {
	if entry, ok := r.names.Get(pubkey); ok && entry.Name != "" {
		return "@" + entry.Name
	}
	if npub, err := nips.EncodePubkey(pubkey); err == nil {
		return "@" + npub
	}
	return "@" + pubkey
}

// invoiceCard renders the fixed invoice markup: title with the decoded
// amount (omitted when decoding fails), a QR for wallets, the raw invoice
// text, and a pay button.
func (r *Renderer) invoiceCard(invoice string) string {
	title := "Lightning Invoice"
	if sats, ok := lightning.InvoiceSatAmount(invoice); ok {
		title = fmt.Sprintf("Lightning Invoice: %d sats", sats)
	}

	var sb strings.Builder
	sb.WriteString(`<div class="lightning-invoice"><span class="lightning-title">`)
	sb.WriteString(title)
	sb.WriteString(`</span><p>`)
	if qr := qrCodeDataURL(invoice); qr != "" {
		sb.WriteString(`<img class="lightning-qr" src="`)
		sb.WriteString(qr)
		sb.WriteString(`" alt="invoice QR" />`)
	}
	sb.WriteString(html.EscapeString(invoice))
	sb.WriteString(`<br><br><button class="button-17" role="button">pay</button></p></div>`)
	return sb.String()
}

// wrapLink wraps text in the anchor markup shared by mention, hashtag and
// nostr reference substitutions.
func wrapLink(text, href string) string {
	return fmt.Sprintf(`<a class="hashtag" href="%s">%s</a>`, html.EscapeString(href), html.EscapeString(text))
}
