package nips

// ThreadContext is the reply-threading resolution for a note, derived from
// its tags per NIP-10. Profiles is positional: Profiles[i] corresponds to
// the i-th #[i] placeholder in the note content.
type ThreadContext struct {
	Root     *EventPointer
	Reply    *EventPointer
	Mentions []EventPointer
	Profiles []ProfileRef
}

// ParseThread resolves a note's e and p tags into a ThreadContext.
//
// Marked e tags ("root"/"reply"/"mention" in position 3) take precedence.
// Unmarked tags fall back to the positional convention: first e tag is the
// thread root, last is the direct reply target, the rest are mentions. A
// single unmarked e tag is both root and reply.
func ParseThread(tags [][]string) ThreadContext {
	var ctx ThreadContext
	var positional []EventPointer
	marked := false

	for _, tag := range tags {
		if len(tag) < 2 || tag[1] == "" {
			continue
		}
		switch tag[0] {
		case "e":
			ep := EventPointer{ID: tag[1]}
			if len(tag) >= 3 && tag[2] != "" {
				ep.Relays = []string{tag[2]}
			}
			if len(tag) >= 4 {
				switch tag[3] {
				case "root":
					marked = true
					ctx.Root = &ep
					continue
				case "reply":
					marked = true
					ctx.Reply = &ep
					continue
				case "mention":
					marked = true
					ctx.Mentions = append(ctx.Mentions, ep)
					continue
				}
			}
			positional = append(positional, ep)
		case "p":
			ref := ProfileRef{Pubkey: tag[1]}
			if len(tag) >= 3 {
				ref.Relay = tag[2]
			}
			ctx.Profiles = append(ctx.Profiles, ref)
		}
	}

	if !marked && len(positional) > 0 {
		first := positional[0]
		last := positional[len(positional)-1]
		ctx.Root = &first
		ctx.Reply = &last
		if len(positional) > 2 {
			ctx.Mentions = append(ctx.Mentions, positional[1:len(positional)-1]...)
		}
	}

	return ctx
}
