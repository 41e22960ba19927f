package nips

import (
	"strings"
	"testing"
)

const (
	testPubkey  = "bbde6a0e8847e1cdb2ba5ec021cc949eb3cef125b8304a748fe11c0407990eec"
	testEventID = "5c83da77af1dec6d7289834998ad7aafbd9e2191396d75ec3cc27f5a77226f36"
)

func TestPubkeyRoundtrip(t *testing.T) {
	npub, err := EncodePubkey(testPubkey)
	if err != nil {
		t.Fatalf("EncodePubkey failed: %v", err)
	}
	if !strings.HasPrefix(npub, "npub1") {
		t.Errorf("expected npub1 prefix, got %s", npub)
	}

	decoded, err := DecodePubkey(npub)
	if err != nil {
		t.Fatalf("DecodePubkey failed: %v", err)
	}
	if decoded != testPubkey {
		t.Errorf("roundtrip mismatch:\n  original: %s\n  decoded:  %s", testPubkey, decoded)
	}
}

func TestNoteRoundtrip(t *testing.T) {
	note, err := EncodeNote(testEventID)
	if err != nil {
		t.Fatalf("EncodeNote failed: %v", err)
	}
	if !strings.HasPrefix(note, "note1") {
		t.Errorf("expected note1 prefix, got %s", note)
	}

	decoded, err := DecodeNote(note)
	if err != nil {
		t.Fatalf("DecodeNote failed: %v", err)
	}
	if decoded != testEventID {
		t.Errorf("roundtrip mismatch: %s != %s", decoded, testEventID)
	}
}

func TestEventPointerRoundtrip(t *testing.T) {
	ep := EventPointer{
		ID:     testEventID,
		Author: testPubkey,
		Relays: []string{"wss://relay.example.com"},
	}

	nevent, err := EncodeEventPointer(ep)
	if err != nil {
		t.Fatalf("EncodeEventPointer failed: %v", err)
	}
	if !strings.HasPrefix(nevent, "nevent1") {
		t.Errorf("expected nevent1 prefix, got %s", nevent)
	}

	decoded, err := DecodeNEvent(nevent)
	if err != nil {
		t.Fatalf("DecodeNEvent failed: %v", err)
	}
	if decoded.ID != ep.ID {
		t.Errorf("event ID mismatch: %s != %s", decoded.ID, ep.ID)
	}
	if decoded.Author != ep.Author {
		t.Errorf("author mismatch: %s != %s", decoded.Author, ep.Author)
	}
	if len(decoded.Relays) != 1 || decoded.Relays[0] != "wss://relay.example.com" {
		t.Errorf("relay hints mismatch: %v", decoded.Relays)
	}
}

func TestEncodeStability(t *testing.T) {
	first, err := EncodePubkey(testPubkey)
	if err != nil {
		t.Fatalf("EncodePubkey failed: %v", err)
	}
	second, err := EncodePubkey(testPubkey)
	if err != nil {
		t.Fatalf("EncodePubkey failed on repeat: %v", err)
	}
	if first != second {
		t.Errorf("encoding not stable: %s != %s", first, second)
	}
}

func TestDecodeDispatch(t *testing.T) {
	npub, _ := EncodePubkey(testPubkey)
	note, _ := EncodeNote(testEventID)
	nevent, _ := EncodeEventPointer(EventPointer{ID: testEventID})

	prefix, data, err := Decode(npub)
	if err != nil || prefix != "npub" || data.(string) != testPubkey {
		t.Errorf("npub dispatch: prefix=%s data=%v err=%v", prefix, data, err)
	}

	prefix, data, err = Decode(note)
	if err != nil || prefix != "note" || data.(string) != testEventID {
		t.Errorf("note dispatch: prefix=%s data=%v err=%v", prefix, data, err)
	}

	prefix, data, err = Decode(nevent)
	if err != nil || prefix != "nevent" {
		t.Fatalf("nevent dispatch: prefix=%s err=%v", prefix, err)
	}
	if ep := data.(*EventPointer); ep.ID != testEventID {
		t.Errorf("nevent pointer ID mismatch: %s", ep.ID)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		"",
		"npub1",
		"npub1invalidcharacters!!!",
		"nevent1qqqq",
		"lnbc210n1qqqqqq", // wrong namespace entirely
		"xprv9s21ZrQH143K3QTDL4LXw2F7HEK",
	}
	for _, input := range cases {
		if _, _, err := Decode(input); err == nil {
			t.Errorf("Decode(%q) should have failed", input)
		}
	}
}

func TestDecodePubkeyRejectsWrongHRP(t *testing.T) {
	note, _ := EncodeNote(testEventID)
	if _, err := DecodePubkey(note); err == nil {
		t.Error("DecodePubkey accepted a note1 identifier")
	}
}
