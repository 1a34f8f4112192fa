// Package settlement submits credit issuance, purchase and retirement actions
// to a ledger. Only a simulated ledger is provided; a real one plugs in behind Service.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is the type of ledger action.
type Kind int

const (
	KindIssue    Kind = iota // Mint newly verified credits
	KindPurchase             // Buy credits from a project
	KindRetire               // Permanently retire owned credits
)

func (k Kind) String() string {
	switch k {
	case KindIssue:
		return "issue"
	case KindPurchase:
		return "purchase"
	case KindRetire:
		return "retire"
	default:
		return "unknown"
	}
}

var (
	// ErrMissingSignature indicates an issuance without a digital signature.
	ErrMissingSignature = errors.New("digital signature required")

	// ErrInvalidAmount indicates a non-positive credit amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMissingReason indicates a retirement without a stated reason.
	ErrMissingReason = errors.New("retirement reason required")

	// ErrMissingProject indicates an issuance or purchase without a project.
	ErrMissingProject = errors.New("project required")
)

// Action is one request to the ledger.
type Action struct {
	Kind      Kind
	ProjectID string
	Amount    float64 // Credits, in BCT
	Signature string  // Issuer signature, required for KindIssue
	Reason    string  // Retirement reason, required for KindRetire
}

// Validate checks the action before it is submitted.
func (a Action) Validate() error {
	if a.Amount <= 0 {
		return ErrInvalidAmount
	}
	switch a.Kind {
	case KindIssue:
		if strings.TrimSpace(a.ProjectID) == "" {
			return ErrMissingProject
		}
		if strings.TrimSpace(a.Signature) == "" {
			return ErrMissingSignature
		}
	case KindPurchase:
		if strings.TrimSpace(a.ProjectID) == "" {
			return ErrMissingProject
		}
	case KindRetire:
		if strings.TrimSpace(a.Reason) == "" {
			return ErrMissingReason
		}
	default:
		return fmt.Errorf("unknown action kind %d", a.Kind)
	}
	return nil
}

// Receipt confirms an action recorded on the ledger.
type Receipt struct {
	ID          string
	TxHash      string
	Network     string
	Action      Action
	SubmittedAt time.Time
	ConfirmedAt time.Time
}

// Service submits actions to a ledger.
type Service interface {
	Submit(ctx context.Context, action Action) (Receipt, error)
}

// SettlementError wraps a failed submission.
type SettlementError struct {
	Op   string // Operation that failed (e.g., "validate", "submit")
	Kind Kind
	Err  error
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement: %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}

// IsSettlementError checks if an error came from a ledger submission.
func IsSettlementError(err error) bool {
	var settleErr *SettlementError
	return errors.As(err, &settleErr)
}

// History is implemented by ledgers that keep confirmed receipts.
// ReceiptsFor returns receipts of any of kinds in one timeline, newest first.
type History interface {
	ReceiptsFor(kinds ...Kind) []Receipt
}
