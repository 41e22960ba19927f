package nips

import (
	"encoding/hex"
	"errors"
	"strings"
)

// EventPointer references an event, optionally with author and relay hints.
// It is the decoded form of a nevent1... identifier.
type EventPointer struct {
	ID     string   // 32-byte event ID as hex
	Author string   // Optional 32-byte author pubkey as hex
	Relays []string // Optional relay URLs
}

// ProfileRef references a profile, optionally with a relay hint.
type ProfileRef struct {
	Pubkey string // 32-byte pubkey as hex
	Relay  string // Optional relay URL
}

// TLV type constants for NIP-19
const (
	tlvTypeSpecial = 0 // event_id for nevent, pubkey for nprofile
	tlvTypeRelay   = 1 // relay URL
	tlvTypeAuthor  = 2 // author pubkey
)

// EncodePubkey encodes a hex pubkey to npub format
func EncodePubkey(hexPubkey string) (string, error) {
	pubkeyBytes, err := hex.DecodeString(hexPubkey)
	if err != nil {
		return "", err
	}
	if len(pubkeyBytes) != 32 {
		return "", errors.New("invalid pubkey length")
	}
	return Bech32EncodeBytes("npub", pubkeyBytes)
}

// EncodeNote encodes a hex event ID to note format
func EncodeNote(hexEventID string) (string, error) {
	idBytes, err := hex.DecodeString(hexEventID)
	if err != nil {
		return "", err
	}
	if len(idBytes) != 32 {
		return "", errors.New("invalid event ID length")
	}
	return Bech32EncodeBytes("note", idBytes)
}

// EncodeEventPointer encodes an EventPointer as a nevent1... identifier.
// Relay hints and author are included when present.
func EncodeEventPointer(ep EventPointer) (string, error) {
	idBytes, err := hex.DecodeString(ep.ID)
	if err != nil {
		return "", err
	}
	if len(idBytes) != 32 {
		return "", errors.New("invalid event ID length")
	}

	var tlv []byte
	tlv = append(tlv, tlvTypeSpecial, 32)
	tlv = append(tlv, idBytes...)

	for _, relay := range ep.Relays {
		if relay == "" || len(relay) > 255 {
			continue
		}
		tlv = append(tlv, tlvTypeRelay, byte(len(relay)))
		tlv = append(tlv, relay...)
	}

	if ep.Author != "" {
		authorBytes, err := hex.DecodeString(ep.Author)
		if err == nil && len(authorBytes) == 32 {
			tlv = append(tlv, tlvTypeAuthor, 32)
			tlv = append(tlv, authorBytes...)
		}
	}

	return Bech32EncodeBytes("nevent", tlv)
}

// DecodePubkey decodes an npub1... identifier to a hex pubkey
func DecodePubkey(npub string) (string, error) {
	hrp, data, err := Bech32Decode(npub)
	if err != nil {
		return "", err
	}
	if hrp != "npub" {
		return "", errors.New("not an npub")
	}
	pubkeyBytes, err := Bech32ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", err
	}
	if len(pubkeyBytes) != 32 {
		return "", errors.New("invalid pubkey length")
	}
	return hex.EncodeToString(pubkeyBytes), nil
}

// DecodeNote decodes a note1... identifier to a hex event ID
func DecodeNote(note string) (string, error) {
	hrp, data, err := Bech32Decode(note)
	if err != nil {
		return "", err
	}
	if hrp != "note" {
		return "", errors.New("not a note")
	}
	idBytes, err := Bech32ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", err
	}
	if len(idBytes) != 32 {
		return "", errors.New("invalid note length")
	}
	return hex.EncodeToString(idBytes), nil
}

// DecodeNEvent decodes a nevent1... identifier
func DecodeNEvent(nevent string) (*EventPointer, error) {
	hrp, data, err := Bech32Decode(nevent)
	if err != nil {
		return nil, err
	}
	if hrp != "nevent" {
		return nil, errors.New("not a nevent")
	}
	tlvBytes, err := Bech32ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}

	ep := &EventPointer{}
	for _, f := range parseTLV(tlvBytes) {
		switch f.typ {
		case tlvTypeSpecial:
			if len(f.value) == 32 {
				ep.ID = hex.EncodeToString(f.value)
			}
		case tlvTypeRelay:
			ep.Relays = append(ep.Relays, string(f.value))
		case tlvTypeAuthor:
			if len(f.value) == 32 {
				ep.Author = hex.EncodeToString(f.value)
			}
		}
	}

	if ep.ID == "" {
		return nil, errors.New("nevent missing event ID")
	}
	return ep, nil
}

// DecodeNProfile decodes a nprofile1... identifier
func DecodeNProfile(nprofile string) (*ProfileRef, error) {
	hrp, data, err := Bech32Decode(nprofile)
	if err != nil {
		return nil, err
	}
	if hrp != "nprofile" {
		return nil, errors.New("not a nprofile")
	}
	tlvBytes, err := Bech32ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}

	ref := &ProfileRef{}
	for _, f := range parseTLV(tlvBytes) {
		switch f.typ {
		case tlvTypeSpecial:
			if len(f.value) == 32 {
				ref.Pubkey = hex.EncodeToString(f.value)
			}
		case tlvTypeRelay:
			if ref.Relay == "" {
				ref.Relay = string(f.value)
			}
		}
	}

	if ref.Pubkey == "" {
		return nil, errors.New("nprofile missing pubkey")
	}
	return ref, nil
}

// Decode dispatches on the identifier prefix and returns the decoded value:
// hex pubkey for npub, hex event ID for note, *EventPointer for nevent,
// *ProfileRef for nprofile.
func Decode(encoded string) (string, any, error) {
	switch {
	case strings.HasPrefix(encoded, "npub1"):
		pubkey, err := DecodePubkey(encoded)
		return "npub", pubkey, err
	case strings.HasPrefix(encoded, "note1"):
		id, err := DecodeNote(encoded)
		return "note", id, err
	case strings.HasPrefix(encoded, "nevent1"):
		ep, err := DecodeNEvent(encoded)
		return "nevent", ep, err
	case strings.HasPrefix(encoded, "nprofile1"):
		ref, err := DecodeNProfile(encoded)
		return "nprofile", ref, err
	}
	return "", nil, errors.New("unknown identifier prefix")
}

type tlvField struct {
	typ   byte
	value []byte
}

// parseTLV walks type-length-value fields, stopping at the first truncated
// field rather than erroring; partial identifiers decode as far as they go.
func parseTLV(data []byte) []tlvField {
	var fields []tlvField
	for i := 0; i < len(data); {
		if i+2 > len(data) {
			break
		}
		typ := data[i]
		length := int(data[i+1])
		i += 2
		if i+length > len(data) {
			break
		}
		fields = append(fields, tlvField{typ: typ, value: data[i : i+length]})
		i += length
	}
	return fields
}
