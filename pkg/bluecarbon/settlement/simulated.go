package settlement

import (
	"context"
	"encoding/hex"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultHistory = 20

// Simulated is an in-memory ledger that confirms every valid action after a fixed delay.
// It is safe for concurrent use.
type Simulated struct {
	delay   time.Duration
	network string
	history int
	now     func() time.Time
	logger  *slog.Logger

	mu       sync.Mutex
	receipts []Receipt
}

// NewSimulated creates a ledger confirming after delay on the named network.
func NewSimulated(delay time.Duration, network string) *Simulated {
	return &Simulated{
		delay:   delay,
		network: network,
		history: defaultHistory,
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for submissions.
func (s *Simulated) WithLogger(logger *slog.Logger) *Simulated {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithClock overrides the time source used for receipts.
func (s *Simulated) WithClock(now func() time.Time) *Simulated {
	s.now = now
	return s
}

// Network returns the simulated network name.
func (s *Simulated) Network() string {
	return s.network
}

// Submit validates action, waits for the confirmation delay, and records a receipt.
// Cancelling ctx during the wait abandons the submission; nothing is recorded.
func (s *Simulated) Submit(ctx context.Context, action Action) (Receipt, error) {
	if err := action.Validate(); err != nil {
		return Receipt{}, &SettlementError{Op: "validate", Kind: action.Kind, Err: err}
	}

	submitted := s.now()
	s.logger.Info("ledger submission",
		"kind", action.Kind.String(),
		"project", action.ProjectID,
		"amount", action.Amount,
		"network", s.network,
	)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			s.logger.Warn("ledger submission abandoned", "kind", action.Kind.String(), "error", ctx.Err())
			return Receipt{}, &SettlementError{Op: "submit", Kind: action.Kind, Err: ctx.Err()}
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, &SettlementError{Op: "submit", Kind: action.Kind, Err: err}
	}

	receipt := Receipt{
		ID:          uuid.NewString(),
		TxHash:      txHash(),
		Network:     s.network,
		Action:      action,
		SubmittedAt: submitted,
		ConfirmedAt: s.now(),
	}

	s.mu.Lock()
	s.receipts = append(s.receipts, receipt)
	if len(s.receipts) > s.history {
		s.receipts = s.receipts[len(s.receipts)-s.history:]
	}
	s.mu.Unlock()

	s.logger.Info("ledger confirmed", "kind", action.Kind.String(), "tx", receipt.TxHash)
	return receipt, nil
}

// Receipts returns confirmed receipts, newest first.
func (s *Simulated) Receipts() []Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Receipt, len(s.receipts))
	for i, r := range s.receipts {
		out[len(s.receipts)-1-i] = r
	}
	return out
}

// ReceiptsFor returns confirmed receipts of the given kinds, newest first.
// With no kinds it returns every receipt.
func (s *Simulated) ReceiptsFor(kinds ...Kind) []Receipt {
	all := s.Receipts()
	if len(kinds) == 0 {
		return all
	}
	var out []Receipt
	for _, r := range all {
		if slices.Contains(kinds, r.Action.Kind) {
			out = append(out, r)
		}
	}
	return out
}

// txHash builds a 32-byte hex hash from two random UUIDs.
func txHash() string {
	a, b := uuid.New(), uuid.New()
	return "0x" + strings.ToLower(hex.EncodeToString(a[:])+hex.EncodeToString(b[:]))
}
