// Package lightning decodes BOLT11 payment invoices far enough to surface
// them in rendered content: the envelope is split into named sections and
// the amount (when the invoice carries one) is converted to satoshis.
package lightning

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nostr-view/internal/nips"
)

// Section is one named piece of a decoded invoice.
type Section struct {
	Name  string
	Value string
}

// Invoice is the decoded envelope of a BOLT11 payment request.
type Invoice struct {
	HRP      string
	Sections []Section
}

// Tagged field types per BOLT11
const (
	tagPaymentHash   = 1
	tagDescription   = 13
	tagPayeePubkey   = 19
	tagExpiry        = 6
	tagPaymentSecret = 16
)

// signatureLength is the trailing 5-bit group count holding the signature
// plus recovery byte (512 + 8 bits).
const signatureLength = 104

// DecodeInvoice decodes a BOLT11 invoice into its sections. A leading
// "lightning:" URI prefix is accepted. Zero-amount invoices are valid and
// simply have no "amount" section.
func DecodeInvoice(invoice string) (*Invoice, error) {
	invoice = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(invoice)), "lightning:")
	if invoice == "" {
		return nil, errors.New("empty invoice")
	}
	if !strings.HasPrefix(invoice, "ln") {
		return nil, errors.New("not a lightning invoice")
	}

	hrp, data, err := nips.Bech32Decode(invoice)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{HRP: hrp}

	network, msat, err := parseHRP(hrp)
	if err != nil {
		return nil, err
	}
	inv.Sections = append(inv.Sections, Section{Name: "coin_network", Value: network})
	if msat >= 0 {
		inv.Sections = append(inv.Sections, Section{Name: "amount", Value: strconv.FormatInt(msat, 10)})
	}

	// 35-bit timestamp in the first 7 groups
	if len(data) < 7 {
		return inv, nil
	}
	var ts int64
	for _, g := range data[:7] {
		ts = ts<<5 | int64(g)
	}
	inv.Sections = append(inv.Sections, Section{Name: "timestamp", Value: strconv.FormatInt(ts, 10)})

	// Tagged fields sit between the timestamp and the trailing signature.
	tagged := data[7:]
	if len(tagged) >= signatureLength {
		tagged = tagged[:len(tagged)-signatureLength]
	}
	inv.Sections = append(inv.Sections, parseTaggedFields(tagged)...)

	return inv, nil
}

// InvoiceSatAmount extracts the amount section of an invoice and converts
// millisatoshi to satoshi. The second return is false when the invoice is
// empty, malformed, or carries no amount; decoding never raises.
func InvoiceSatAmount(invoice string) (int64, bool) {
	inv, err := DecodeInvoice(invoice)
	if err != nil {
		return 0, false
	}
	for _, s := range inv.Sections {
		if s.Name == "amount" {
			msat, err := strconv.ParseInt(s.Value, 10, 64)
			if err != nil {
				return 0, false
			}
			return msat / 1000, true
		}
	}
	return 0, false
}

// parseHRP splits the human-readable part into network prefix and amount in
// millisatoshi. Returns msat = -1 for any-amount invoices.
func parseHRP(hrp string) (string, int64, error) {
	body := strings.TrimPrefix(hrp, "ln")

	// Network prefix is the leading run of letters
	i := 0
	for i < len(body) && (body[i] < '0' || body[i] > '9') {
		i++
	}
	network := body[:i]
	amount := body[i:]
	if network == "" {
		return "", 0, errors.New("missing network prefix")
	}
	if amount == "" {
		return network, -1, nil
	}

	multiplier := int64(0)
	divisor := int64(1)
	switch amount[len(amount)-1] {
	case 'm':
		multiplier, amount = 100_000_000, amount[:len(amount)-1]
	case 'u':
		multiplier, amount = 100_000, amount[:len(amount)-1]
	case 'n':
		multiplier, amount = 100, amount[:len(amount)-1]
	case 'p':
		multiplier, divisor, amount = 1, 10, amount[:len(amount)-1]
	default:
		multiplier = 100_000_000_000 // whole bitcoin
	}

	value, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return network, value * multiplier / divisor, nil
}

// parseTaggedFields walks the tagged data part. Unknown or truncated tags
// are skipped; invoices in the wild routinely carry tags we do not name.
func parseTaggedFields(data []byte) []Section {
	var sections []Section
	for i := 0; i+3 <= len(data); {
		tag := data[i]
		length := int(data[i+1])<<5 | int(data[i+2])
		i += 3
		if i+length > len(data) {
			break
		}
		value := data[i : i+length]
		i += length

		switch tag {
		case tagPaymentHash:
			if b, err := nips.Bech32ConvertBits(value, 5, 8, true); err == nil && len(b) >= 32 {
				sections = append(sections, Section{Name: "payment_hash", Value: hex.EncodeToString(b[:32])})
			}
		case tagPaymentSecret:
			if b, err := nips.Bech32ConvertBits(value, 5, 8, true); err == nil && len(b) >= 32 {
				sections = append(sections, Section{Name: "payment_secret", Value: hex.EncodeToString(b[:32])})
			}
		case tagPayeePubkey:
			if b, err := nips.Bech32ConvertBits(value, 5, 8, true); err == nil && len(b) >= 33 {
				sections = append(sections, Section{Name: "payee", Value: hex.EncodeToString(b[:33])})
			}
		case tagDescription:
			if b, err := nips.Bech32ConvertBits(value, 5, 8, true); err == nil {
				sections = append(sections, Section{Name: "description", Value: strings.TrimRight(string(b), "\x00")})
			}
		case tagExpiry:
			var expiry int64
			for _, g := range value {
				expiry = expiry<<5 | int64(g)
			}
			sections = append(sections, Section{Name: "expiry", Value: strconv.FormatInt(expiry, 10)})
		}
	}
	return sections
}
