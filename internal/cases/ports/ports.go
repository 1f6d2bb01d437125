// Package ports declares the collaborator contracts the case pipeline depends
// on. Every method returns values; no collaborator mutates its arguments.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"caseregistry/internal/cases/models"
)

// Repository is the read side of case storage.
type Repository interface {
	// Search returns the records matching one criterion, newest first.
	Search(ctx context.Context, criteria models.CaseCriteria) ([]models.CourtCase, error)
	// ExistsBatch answers each check in order. An empty match means false.
	ExistsBatch(ctx context.Context, checks []models.CaseExists) ([]models.CaseExists, error)
}

// CaseWriter is the write side of case storage, used by the persister.
type CaseWriter interface {
	Upsert(ctx context.Context, cases []models.CourtCase) error
}

// Workflow requests transitions and reads back process state.
type Workflow interface {
	// Advance requests the transition named by c.Workflow and returns the
	// status the case reached.
	Advance(ctx context.Context, info models.RequestInfo, c models.CourtCase) (string, error)
	CurrentInstance(ctx context.Context, info models.RequestInfo, tenantID, businessID string) (models.ProcessInstance, error)
	StatusOf(ctx context.Context, instance models.ProcessInstance) (models.Workflow, error)
}

type Identity interface {
	Exists(ctx context.Context, info models.RequestInfo, individualID string) (bool, error)
}

type Documents interface {
	Exists(ctx context.Context, tenantID, fileStoreID string) (bool, error)
}

type Advocates interface {
	Exists(ctx context.Context, info models.RequestInfo, advocateID string) (bool, error)
}

type ReferenceData interface {
	Fetch(ctx context.Context, info models.RequestInfo, tenantID, module string, masters []string) (models.MasterData, error)
}

type Billing interface {
	CreateDemand(ctx context.Context, info models.RequestInfo, c models.CourtCase) error
}

// Enricher derives ids, numbers and audit fields.
type Enricher interface {
	EnrichCreate(ctx context.Context, info models.RequestInfo, c models.CourtCase) (models.CourtCase, error)
	EnrichUpdate(ctx context.Context, info models.RequestInfo, c models.CourtCase) (models.CourtCase, error)
	AssignAccessCode(ctx context.Context, c models.CourtCase) (models.CourtCase, error)
	// AssignCaseNumbers fails for a case without an access code.
	AssignCaseNumbers(ctx context.Context, c models.CourtCase) (models.CourtCase, error)
}

// Encryptor seals and opens the sensitive payloads of a record as a unit.
type Encryptor interface {
	Encrypt(ctx context.Context, c models.CourtCase, schema string) (models.CourtCase, error)
	Decrypt(ctx context.Context, c models.CourtCase, mode string, info models.RequestInfo) (models.CourtCase, error)
}

// EventPublisher hands a payload to the bus without waiting for delivery.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, payload any) error
}
