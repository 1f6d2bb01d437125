// Package encryption seals a case record before it leaves the service and
// opens it before it is handed back to a caller.
//
// The record is the unit of encryption: every sensitive payload is sealed or
// none is. Sensitive payloads are CaseDetails and the AdditionalDetails of
// litigants, representatives and represented parties.
package encryption

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
	"caseregistry/internal/platform/fieldcrypt"
)

const (
	// SchemaCourtCase selects the sensitive payloads of a court case.
	SchemaCourtCase = "CourtCase"
	// ModeSelf opens payloads for the owner of the record.
	ModeSelf = "CaseDecryptSelf"
	// ModeMasked replaces payloads with a redaction marker.
	ModeMasked = "CaseDecryptOther"
)

var masked = json.RawMessage(`"********"`)

// FieldCipher seals single payloads for a tenant.
type FieldCipher interface {
	Seal(tenantID string, plaintext []byte) (string, error)
	Open(tenantID, token string) ([]byte, error)
}

type Boundary struct {
	cipher FieldCipher
}

var _ ports.Encryptor = (*Boundary)(nil)

func New(cipher FieldCipher) *Boundary {
	return &Boundary{cipher: cipher}
}

// Encrypt returns a sealed copy of c. Payloads that are already sealed are
// kept as they are. The input is not modified.
func (b *Boundary) Encrypt(_ context.Context, c models.CourtCase, schema string) (models.CourtCase, error) {
	if schema != SchemaCourtCase {
		return models.CourtCase{}, fmt.Errorf("encrypt: unknown schema %q", schema)
	}
	out := c.Clone()
	err := eachSensitive(&out, func(raw json.RawMessage) (json.RawMessage, error) {
		if isSealed(raw) {
			return raw, nil
		}
		token, err := b.cipher.Seal(c.TenantID, raw)
		if err != nil {
			return nil, err
		}
		return json.Marshal(token)
	})
	if err != nil {
		return models.CourtCase{}, fmt.Errorf("encrypt case %s: %w", c.ID, err)
	}
	return out, nil
}

// Decrypt returns an opened copy of c. In self mode the exact bytes given to
// Encrypt come back; in masked mode every sealed payload is redacted.
// Payloads that were never sealed pass through.
func (b *Boundary) Decrypt(_ context.Context, c models.CourtCase, mode string, _ models.RequestInfo) (models.CourtCase, error) {
	var open func(json.RawMessage) (json.RawMessage, error)
	switch mode {
	case ModeSelf:
		open = func(raw json.RawMessage) (json.RawMessage, error) {
			if !isSealed(raw) {
				return raw, nil
			}
			var token string
			if err := json.Unmarshal(raw, &token); err != nil {
				return nil, err
			}
			return b.cipher.Open(c.TenantID, token)
		}
	case ModeMasked:
		open = func(raw json.RawMessage) (json.RawMessage, error) {
			if !isSealed(raw) {
				return raw, nil
			}
			return masked, nil
		}
	default:
		return models.CourtCase{}, fmt.Errorf("decrypt: unknown mode %q", mode)
	}

	out := c.Clone()
	if err := eachSensitive(&out, open); err != nil {
		return models.CourtCase{}, fmt.Errorf("decrypt case %s: %w", c.ID, err)
	}
	return out, nil
}

// eachSensitive replaces every non-empty sensitive payload of c with fn's
// result. c must not share slices with anything the caller still holds.
func eachSensitive(c *models.CourtCase, fn func(json.RawMessage) (json.RawMessage, error)) error {
	apply := func(raw *json.RawMessage) error {
		if isEmpty(*raw) {
			return nil
		}
		v, err := fn(*raw)
		if err != nil {
			return err
		}
		*raw = v
		return nil
	}

	if err := apply(&c.CaseDetails); err != nil {
		return err
	}
	for i := range c.Litigants {
		if err := apply(&c.Litigants[i].AdditionalDetails); err != nil {
			return err
		}
	}
	for i := range c.Representatives {
		rep := &c.Representatives[i]
		if err := apply(&rep.AdditionalDetails); err != nil {
			return err
		}
		for j := range rep.Representing {
			if err := apply(&rep.Representing[j].AdditionalDetails); err != nil {
				return err
			}
		}
	}
	return nil
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isSealed(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 1 && trimmed[0] == '"' && fieldcrypt.IsSealed(string(trimmed[1:]))
}
