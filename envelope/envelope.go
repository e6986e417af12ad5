// Package envelope wraps watermark source text in a checksum envelope and
// verifies envelopes recovered from decoded watermarks.
//
// The envelope is the only structure this codec persists or transmits. Its
// wire form is a JSON object with a data field (the original text), a crc32
// field (CRC-32/ISO-HDLC of the UTF-8 bytes of data, as 8 lowercase hex
// digits), and a timestamp field (Unix seconds at creation). Legacy
// envelopes written before checksums were introduced omit the crc32 field;
// they are a distinct valid variant, never fabricated and never rejected
// for the missing field alone.
//
// The checksum detects accidental corruption of the recovered text. It is
// not a security control: anyone who knows the scheme can recompute it.
package envelope

import (
	"encoding/json"
	"fmt"
	"hash/crc32"
	"strings"
	"time"
)

// Envelope is the checksum envelope around a piece of watermark text.
type Envelope struct {
	// Data is the original text.
	Data string `json:"data"`

	// CRC32 is the checksum of Data's UTF-8 bytes as 8 lowercase hex
	// digits. Empty for legacy envelopes.
	CRC32 string `json:"crc32,omitempty"`

	// Timestamp is the creation time in Unix seconds.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// Status classifies the outcome of a verification.
type Status int

const (
	// StatusChecked means a checksum was present and compared.
	StatusChecked Status = iota

	// StatusLegacy means the envelope carries no checksum, so the data
	// passed through unchecked.
	StatusLegacy

	// StatusMalformed means the envelope structure could not be parsed.
	StatusMalformed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusChecked:
		return "Checked"
	case StatusLegacy:
		return "Legacy"
	case StatusMalformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// Verification is the result of verifying an envelope.
type Verification struct {
	// Valid reports whether the data can be trusted. Legacy envelopes are
	// valid; Status distinguishes them from a passed checksum comparison.
	Valid bool

	// Status says how Valid was determined.
	Status Status

	// Data is the envelope's text, empty when malformed.
	Data string

	// Message is a human-readable account of the outcome.
	Message string
}

// Wrap builds an envelope around text with a checksum and the current time.
func Wrap(text string) Envelope {
	return WrapAt(text, time.Now())
}

// WrapAt is Wrap with an explicit creation time.
func WrapAt(text string, t time.Time) Envelope {
	return Envelope{
		Data:      text,
		CRC32:     Checksum(text),
		Timestamp: t.Unix(),
	}
}

// Checksum returns the CRC-32/ISO-HDLC checksum of text's UTF-8 bytes as
// 8 lowercase hex digits.
func Checksum(text string) string {
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE([]byte(text)))
}

// Verify recomputes the checksum over the envelope's data and compares it
// case-insensitively with the stored value. An envelope without a checksum
// is reported valid with legacy status rather than failing; absence of a
// checksum is not itself evidence of corruption.
func (e Envelope) Verify() Verification {
	if e.Data == "" {
		return Verification{
			Status:  StatusMalformed,
			Message: "envelope has no data field",
		}
	}

	if e.CRC32 == "" {
		return Verification{
			Valid:   true,
			Status:  StatusLegacy,
			Data:    e.Data,
			Message: "legacy format, checksum unchecked",
		}
	}

	want := Checksum(e.Data)
	if !strings.EqualFold(e.CRC32, want) {
		return Verification{
			Status:  StatusChecked,
			Data:    e.Data,
			Message: fmt.Sprintf("checksum mismatch: stored %s, computed %s", e.CRC32, want),
		}
	}

	return Verification{
		Valid:   true,
		Status:  StatusChecked,
		Data:    e.Data,
		Message: "checksum verified",
	}
}

// VerifyJSON parses a wire-format envelope and verifies it. Unparseable
// input yields a malformed verification, never a silent pass or a panic.
func VerifyJSON(raw []byte) Verification {
	var e Envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return Verification{
			Status:  StatusMalformed,
			Message: fmt.Sprintf("unparseable envelope: %v", err),
		}
	}
	return e.Verify()
}
