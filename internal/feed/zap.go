package feed

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"nostr-view/internal/cache"
	"nostr-view/internal/lightning"
	"nostr-view/internal/nips"
	"nostr-view/internal/render"
	"nostr-view/internal/types"
)

// Zap is a renderable payment receipt (kind 9735). Immutable after
// construction; every derived field is computed synchronously because later
// fields depend on earlier ones.
type Zap struct {
	ID              string
	Kind            int
	WalletPubkey    string // receipt author: the wallet service that observed the payment
	WalletNpub      string
	DisplayName     string // wallet identity from the name cache
	Picture         string
	ReceiverPubkey  string
	ReceiverNpub    string
	ReceiverEventID string // zapped event, when the receipt references one
	Bolt11          string
	Preimage        string
	SatAmount       int64
	Description     *types.Event // the embedded zap request, signed by the sender
	SenderPubkey    string
	SenderNpub      string
	SenderMessage   string
	ContentHTML     string
	CreatedAt       int64
	FromNow         string
}

// BuildZap assembles a Zap from a raw payment-receipt event. Tag extraction
// is first-match by tag name with empty-string defaults; a description tag
// holding invalid JSON yields a receipt with no sender identity but still a
// renderable summary.
func BuildZap(evt types.Event, names cache.NameStore, renderer *render.Renderer) *Zap {
	zap := &Zap{
		ID:           evt.ID,
		Kind:         evt.Kind,
		WalletPubkey: evt.PubKey,
		CreatedAt:    evt.CreatedAt,
		FromNow:      FormatRelativeTime(evt.CreatedAt),
	}

	zap.WalletNpub = encodeOr(nips.EncodePubkey, evt.PubKey)
	zap.DisplayName, zap.Picture = resolveIdentity(names, evt.PubKey, zap.WalletNpub)

	zap.ReceiverPubkey = types.GetTagValue(evt.Tags, "p")
	zap.ReceiverNpub = encodeOr(nips.EncodePubkey, zap.ReceiverPubkey)
	zap.ReceiverEventID = types.GetTagValue(evt.Tags, "e")
	zap.Bolt11 = types.GetTagValue(evt.Tags, "bolt11")
	zap.Preimage = types.GetTagValue(evt.Tags, "preimage")
	zap.Description = parseDescription(evt.Tags)

	if zap.Description != nil {
		zap.SenderPubkey = zap.Description.PubKey
		zap.SenderNpub = encodeOr(nips.EncodePubkey, zap.SenderPubkey)
		zap.SenderMessage = zap.Description.Content
	}

	zap.SatAmount, _ = lightning.InvoiceSatAmount(zap.Bolt11)

	zap.setContent(renderer)

	return zap
}

// setContent composes the human-readable summary and renders it as an
// ordinary note, with thread context taken from the zap request's own tags.
func (z *Zap) setContent(renderer *render.Renderer) {
	if z.Description == nil {
		return
	}

	content := fmt.Sprintf("nostr:%s zapped nostr:%s %d sats", z.SenderNpub, z.ReceiverNpub, z.SatAmount)
	if z.ReceiverEventID != "" {
		if nevent, err := nips.EncodeEventPointer(nips.EventPointer{ID: z.ReceiverEventID}); err == nil {
			content += fmt.Sprintf(" <p> for nostr:%s</p>", nevent)
		}
	}
	if z.SenderMessage != "" {
		content += fmt.Sprintf("<p> %s</p>", z.SenderMessage)
	}

	thread := nips.ParseThread(z.Description.Tags)
	z.ContentHTML = renderer.Render(z.Kind, content, thread)
}

// parseDescription extracts the embedded zap request from the description
// tag. Parse failures yield nil rather than aborting the whole receipt.
func parseDescription(tags [][]string) *types.Event {
	raw := types.GetTagValue(tags, "description")
	if raw == "" {
		return nil
	}
	var request types.Event
	if err := json.Unmarshal([]byte(raw), &request); err != nil {
		slog.Debug("could not parse zap receipt description", "error", err)
		return nil
	}
	return &request
}
