package types

// Nostr event kinds handled by the builders.
const (
	KindMetadata   = 0
	KindTextNote   = 1
	KindRepost     = 6
	KindZapRequest = 9734
	KindZapReceipt = 9735
)

// KindDefinition describes how to process and render a specific Nostr event kind.
// This is the single source of truth for kind-specific behavior.
type KindDefinition struct {
	Kind     int    // Nostr event kind number
	Name     string // Machine name: "note", "repost", "zap", etc.
	Label    string // Human label for report output

	IsRepost    bool // This kind wraps another event (kind 6)
	IsProfile   bool // Content is kind 0 profile metadata JSON
	IsZap       bool // Zap receipt carrying bolt11/description tags
	SkipContent bool // Content field is not free text (reposts, zaps)
}

// KindRegistry maps kind numbers to their definitions.
// Add new kinds here to support them throughout the application.
var KindRegistry = map[int]*KindDefinition{
	KindMetadata: {
		Kind:      KindMetadata,
		Name:      "metadata",
		Label:     "Profile",
		IsProfile: true,
	},
	KindTextNote: {
		Kind:  KindTextNote,
		Name:  "note",
		Label: "Note",
	},
	KindRepost: {
		Kind:        KindRepost,
		Name:        "repost",
		Label:       "Repost",
		IsRepost:    true,
		SkipContent: true, // Content is the reposted event, not text
	},
	KindZapReceipt: {
		Kind:        KindZapReceipt,
		Name:        "zap",
		Label:       "Zap",
		IsZap:       true,
		SkipContent: true,
	},
}

// DefaultKind is used for unknown kinds
var DefaultKind = &KindDefinition{
	Kind:  0,
	Name:  "unknown",
	Label: "Event",
}

// GetKindDefinition returns the definition for a kind, or DefaultKind if not found.
func GetKindDefinition(kind int) *KindDefinition {
	if def, ok := KindRegistry[kind]; ok {
		return def
	}
	return DefaultKind
}
