package service

import (
	"context"

	"loocate/internal/domain/entity"
)

// PushMessage is a provider-independent notification payload. Fields a
// provider cannot express are silently ignored by that provider.
type PushMessage struct {
	Title       string
	Body        string
	Data        map[string]string
	Sound       string
	Badge       int
	ChannelID   string
	CollapseKey string
	ImageURL    string
}

// ProviderStatus describes the outcome of one provider family's batch.
type ProviderStatus string

const (
	// StatusSent means at least one token in the batch was accepted.
	StatusSent ProviderStatus = "sent"
	// StatusSkipped means the family had no tokens to deliver to.
	StatusSkipped ProviderStatus = "skipped"
	// StatusFailed means every token in the batch failed.
	StatusFailed ProviderStatus = "failed"
)

// ProviderReport is the per-family slice of a DispatchResult.
type ProviderReport struct {
	Family        entity.ProviderFamily
	Status        ProviderStatus
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
	ErrorDetail   string
}

// DispatchResult aggregates the outcome of a fan-out across all provider
// families. Dispatch never returns an error to callers; failures are
// reported here so one family's outage cannot poison another's delivery.
type DispatchResult struct {
	Reports []ProviderReport
}

// Delivered reports whether any provider accepted at least one token.
func (r *DispatchResult) Delivered() bool {
	for _, rep := range r.Reports {
		if rep.Status == StatusSent {
			return true
		}
	}
	return false
}

// InvalidTokens collects the stale tokens reported by every provider.
func (r *DispatchResult) InvalidTokens() []string {
	var tokens []string
	for _, rep := range r.Reports {
		tokens = append(tokens, rep.InvalidTokens...)
	}
	return tokens
}

// PushSender delivers a message to tokens belonging to a single provider
// family. Implementations must classify permanently-invalid tokens into the
// report so callers can prune them.
type PushSender interface {
	// Family returns the token family this sender handles.
	Family() entity.ProviderFamily

	// Send delivers the message to all given tokens. Transport failures are
	// reported through the ProviderReport; Send never panics and never
	// returns an error.
	Send(ctx context.Context, tokens []string, message *PushMessage) ProviderReport
}
