// Package enrichment fills in the derived fields of a case record: ids,
// audit details, filing numbers and, on admission, the access code and the
// case and CNR numbers.
package enrichment

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
	"caseregistry/pkg/requestcontext"
)

// ErrNoAccessCode is returned when numbering is asked for a case without an
// access code.
var ErrNoAccessCode = errors.New("case has no access code")

const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Sequencer hands out monotonically increasing numbers per key.
type Sequencer interface {
	Next(ctx context.Context, key string) (int64, error)
}

type Enricher struct {
	seq           Sequencer
	accessCodeLen int
}

var _ ports.Enricher = (*Enricher)(nil)

type Option func(*Enricher)

// WithAccessCodeLength sets the access code length (default 6).
func WithAccessCodeLength(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.accessCodeLen = n
		}
	}
}

func New(seq Sequencer, opts ...Option) *Enricher {
	e := &Enricher{seq: seq, accessCodeLen: 6}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnrichCreate assigns ids, audit details and the filing number.
func (e *Enricher) EnrichCreate(ctx context.Context, info models.RequestInfo, c models.CourtCase) (models.CourtCase, error) {
	c = c.Clone()
	now := requestcontext.Now(ctx)
	audit := newAudit(info, now)

	c.ID = uuid.NewString()
	c.IsActive = true
	c.AuditDetails = audit

	for i := range c.StatutesAndSections {
		s := &c.StatutesAndSections[i]
		s.ID = uuid.NewString()
		s.TenantID = c.TenantID
	}
	for i := range c.Litigants {
		stampParty(&c.Litigants[i], c, audit)
	}
	for i := range c.Representatives {
		stampRepresentative(&c.Representatives[i], c, audit)
	}
	for i := range c.Documents {
		stampDocument(&c.Documents[i])
	}
	for i := range c.LinkedCases {
		c.LinkedCases[i].IsActive = true
	}

	year := filingYear(c, now)
	n, err := e.seq.Next(ctx, fmt.Sprintf("filing:%s:%d", c.TenantID, year))
	if err != nil {
		return models.CourtCase{}, fmt.Errorf("next filing sequence: %w", err)
	}
	c.FilingNumber = fmt.Sprintf("%s-%06d-%d", tenantPrefix(c.TenantID), n, year)
	return c, nil
}

// EnrichUpdate refreshes the audit details and stamps parties and documents
// added since the last update.
func (e *Enricher) EnrichUpdate(ctx context.Context, info models.RequestInfo, c models.CourtCase) (models.CourtCase, error) {
	c = c.Clone()
	now := requestcontext.Now(ctx)
	if c.AuditDetails == nil {
		c.AuditDetails = newAudit(info, now)
	} else {
		c.AuditDetails.LastModifiedBy = userUUID(info)
		c.AuditDetails.LastModifiedTime = now.UnixMilli()
	}
	audit := newAudit(info, now)

	for i := range c.Litigants {
		if c.Litigants[i].ID == "" {
			stampParty(&c.Litigants[i], c, audit)
		}
	}
	for i := range c.Representatives {
		if c.Representatives[i].ID == "" {
			stampRepresentative(&c.Representatives[i], c, audit)
		}
	}
	for i := range c.Documents {
		if c.Documents[i].ID == "" {
			stampDocument(&c.Documents[i])
		}
	}
	return c, nil
}

// AssignAccessCode gives c a random access code unless it already has one.
func (e *Enricher) AssignAccessCode(_ context.Context, c models.CourtCase) (models.CourtCase, error) {
	if c.AccessCode != "" {
		return c, nil
	}
	code, err := randomCode(e.accessCodeLen)
	if err != nil {
		return models.CourtCase{}, fmt.Errorf("generate access code: %w", err)
	}
	c.AccessCode = code
	return c, nil
}

// AssignCaseNumbers assigns the case and CNR numbers. Numbers are assigned
// once; a case that already has them is returned unchanged.
func (e *Enricher) AssignCaseNumbers(ctx context.Context, c models.CourtCase) (models.CourtCase, error) {
	if c.AccessCode == "" {
		return models.CourtCase{}, ErrNoAccessCode
	}
	if c.CaseNumber != "" && c.CNRNumber != "" {
		return c, nil
	}

	now := requestcontext.Now(ctx)
	year := now.Year()
	prefix := tenantPrefix(c.TenantID)

	if c.CaseNumber == "" {
		n, err := e.seq.Next(ctx, fmt.Sprintf("case:%s:%d", c.TenantID, year))
		if err != nil {
			return models.CourtCase{}, fmt.Errorf("next case sequence: %w", err)
		}
		caseType := strings.ToUpper(c.CaseType)
		if caseType == "" {
			caseType = "CS"
		}
		c.CaseNumber = fmt.Sprintf("%s/%d/%d", caseType, n, year)
	}
	if c.CNRNumber == "" {
		n, err := e.seq.Next(ctx, fmt.Sprintf("cnr:%s", c.TenantID))
		if err != nil {
			return models.CourtCase{}, fmt.Errorf("next cnr sequence: %w", err)
		}
		c.CNRNumber = fmt.Sprintf("%s%s%08d%d", prefix, categoryCode(c.CaseCategory), n, year)
	}
	c.RegistrationDate = now.UnixMilli()
	return c, nil
}

func newAudit(info models.RequestInfo, now time.Time) *models.AuditDetails {
	by := userUUID(info)
	ms := now.UnixMilli()
	return &models.AuditDetails{CreatedBy: by, LastModifiedBy: by, CreatedTime: ms, LastModifiedTime: ms}
}

func userUUID(info models.RequestInfo) string {
	if info.UserInfo == nil {
		return ""
	}
	return info.UserInfo.UUID
}

func stampParty(p *models.Party, c models.CourtCase, audit *models.AuditDetails) {
	p.ID = uuid.NewString()
	p.TenantID = c.TenantID
	p.CaseID = c.ID
	p.IsActive = true
	a := *audit
	p.AuditDetails = &a
}

func stampRepresentative(r *models.AdvocateMapping, c models.CourtCase, audit *models.AuditDetails) {
	r.ID = uuid.NewString()
	r.TenantID = c.TenantID
	r.CaseID = c.ID
	r.IsActive = true
	a := *audit
	r.AuditDetails = &a
	for j := range r.Representing {
		if r.Representing[j].ID == "" {
			stampParty(&r.Representing[j], c, audit)
		}
	}
}

func stampDocument(d *models.Document) {
	d.ID = uuid.NewString()
	d.IsActive = true
}

func filingYear(c models.CourtCase, now time.Time) int {
	if c.FilingDate > 0 {
		return time.UnixMilli(c.FilingDate).UTC().Year()
	}
	return now.UTC().Year()
}

// tenantPrefix is the upper-cased state part of a tenant id: "pg.citya" -> "PG".
func tenantPrefix(tenantID string) string {
	state, _, _ := strings.Cut(tenantID, ".")
	return strings.ToUpper(state)
}

func categoryCode(category string) string {
	code := strings.ToUpper(category)
	if len(code) >= 2 {
		return code[:2]
	}
	return fmt.Sprintf("%-2s", code)
}

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = accessCodeAlphabet[int(b)%len(accessCodeAlphabet)]
	}
	return string(buf), nil
}
