package nips

import "testing"

func TestParseThreadMarkedTags(t *testing.T) {
	tags := [][]string{
		{"e", "rootid", "wss://relay.one", "root"},
		{"e", "replyid", "", "reply"},
		{"e", "mentionid", "", "mention"},
		{"p", "pubkey-a", "wss://relay.two"},
		{"p", "pubkey-b"},
	}

	ctx := ParseThread(tags)

	if ctx.Root == nil || ctx.Root.ID != "rootid" {
		t.Fatalf("root not resolved: %+v", ctx.Root)
	}
	if len(ctx.Root.Relays) != 1 || ctx.Root.Relays[0] != "wss://relay.one" {
		t.Errorf("root relay hint missing: %v", ctx.Root.Relays)
	}
	if ctx.Reply == nil || ctx.Reply.ID != "replyid" {
		t.Errorf("reply not resolved: %+v", ctx.Reply)
	}
	if len(ctx.Mentions) != 1 || ctx.Mentions[0].ID != "mentionid" {
		t.Errorf("mentions not resolved: %+v", ctx.Mentions)
	}
	if len(ctx.Profiles) != 2 || ctx.Profiles[0].Pubkey != "pubkey-a" || ctx.Profiles[1].Pubkey != "pubkey-b" {
		t.Errorf("profiles not positional: %+v", ctx.Profiles)
	}
	if ctx.Profiles[0].Relay != "wss://relay.two" {
		t.Errorf("profile relay hint missing: %+v", ctx.Profiles[0])
	}
}

func TestParseThreadPositionalFallback(t *testing.T) {
	tags := [][]string{
		{"e", "first"},
		{"e", "middle"},
		{"e", "last"},
	}

	ctx := ParseThread(tags)

	if ctx.Root == nil || ctx.Root.ID != "first" {
		t.Errorf("positional root should be first e tag: %+v", ctx.Root)
	}
	if ctx.Reply == nil || ctx.Reply.ID != "last" {
		t.Errorf("positional reply should be last e tag: %+v", ctx.Reply)
	}
	if len(ctx.Mentions) != 1 || ctx.Mentions[0].ID != "middle" {
		t.Errorf("positional mentions should be the middle tags: %+v", ctx.Mentions)
	}
}

func TestParseThreadSingleETag(t *testing.T) {
	ctx := ParseThread([][]string{{"e", "only"}})
	if ctx.Root == nil || ctx.Root.ID != "only" {
		t.Errorf("single e tag should be root: %+v", ctx.Root)
	}
	if ctx.Reply == nil || ctx.Reply.ID != "only" {
		t.Errorf("single e tag should also be reply: %+v", ctx.Reply)
	}
}

func TestParseThreadEmpty(t *testing.T) {
	ctx := ParseThread(nil)
	if ctx.Root != nil || ctx.Reply != nil || len(ctx.Mentions) != 0 || len(ctx.Profiles) != 0 {
		t.Errorf("empty tags should yield empty context: %+v", ctx)
	}
}

func TestParseThreadSkipsEmptyValues(t *testing.T) {
	ctx := ParseThread([][]string{{"e", ""}, {"p", ""}, {"e"}})
	if ctx.Root != nil || len(ctx.Profiles) != 0 {
		t.Errorf("blank tag values should be ignored: %+v", ctx)
	}
}
