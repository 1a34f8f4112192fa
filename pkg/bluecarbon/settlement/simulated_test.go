package settlement_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/settlement"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		action settlement.Action
		want   error
	}{
		{"issue without signature", settlement.Action{Kind: settlement.KindIssue, ProjectID: "p", Amount: 1}, settlement.ErrMissingSignature},
		{"issue without project", settlement.Action{Kind: settlement.KindIssue, Signature: "s", Amount: 1}, settlement.ErrMissingProject},
		{"zero amount", settlement.Action{Kind: settlement.KindPurchase, ProjectID: "p"}, settlement.ErrInvalidAmount},
		{"retire without reason", settlement.Action{Kind: settlement.KindRetire, Amount: 5}, settlement.ErrMissingReason},
		{"valid retire", settlement.Action{Kind: settlement.KindRetire, Amount: 5, Reason: "Scope 1 offset"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.action.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSubmitRecordsReceipt(t *testing.T) {
	fixed := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	ledger := settlement.NewSimulated(0, "Polygon Mainnet").WithClock(func() time.Time { return fixed })

	receipt, err := ledger.Submit(context.Background(), settlement.Action{
		Kind:      settlement.KindIssue,
		ProjectID: "BC-2024-001",
		Amount:    1250,
		Signature: "Dr. Rajesh Kumar",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, receipt.ID)
	assert.Len(t, receipt.TxHash, 66)
	assert.Equal(t, "Polygon Mainnet", receipt.Network)
	assert.Equal(t, fixed, receipt.ConfirmedAt)
	assert.Equal(t, []settlement.Receipt{receipt}, ledger.Receipts())
	assert.Empty(t, ledger.ReceiptsFor(settlement.KindRetire))
}

func TestReceiptsForMergesKinds(t *testing.T) {
	ledger := settlement.NewSimulated(0, "test")
	ctx := context.Background()

	actions := []settlement.Action{
		{Kind: settlement.KindPurchase, ProjectID: "p", Amount: 1},
		{Kind: settlement.KindIssue, ProjectID: "p", Amount: 2, Signature: "s"},
		{Kind: settlement.KindRetire, Amount: 3, Reason: "offset"},
	}
	for _, a := range actions {
		_, err := ledger.Submit(ctx, a)
		require.NoError(t, err)
	}

	got := ledger.ReceiptsFor(settlement.KindPurchase, settlement.KindRetire)
	require.Len(t, got, 2)
	assert.Equal(t, settlement.KindRetire, got[0].Action.Kind)
	assert.Equal(t, settlement.KindPurchase, got[1].Action.Kind)
	assert.Len(t, ledger.ReceiptsFor(), 3)
}

func TestSubmitRejectsInvalidAction(t *testing.T) {
	ledger := settlement.NewSimulated(time.Hour, "test")

	_, err := ledger.Submit(context.Background(), settlement.Action{Kind: settlement.KindRetire, Amount: 10})
	require.Error(t, err)
	assert.True(t, settlement.IsSettlementError(err))
	assert.ErrorIs(t, err, settlement.ErrMissingReason)
	assert.EqualError(t, err, "settlement: validate retire: retirement reason required")
	assert.Empty(t, ledger.Receipts())
}

func TestSubmitHonorsCancellation(t *testing.T) {
	ledger := settlement.NewSimulated(time.Hour, "test")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ledger.Submit(ctx, settlement.Action{Kind: settlement.KindPurchase, ProjectID: "p", Amount: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, ledger.Receipts())
}

func TestConcurrentSubmissionsKeepBoundedHistory(t *testing.T) {
	ledger := settlement.NewSimulated(time.Millisecond, "test")

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.Submit(context.Background(), settlement.Action{Kind: settlement.KindPurchase, ProjectID: "p", Amount: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, ledger.Receipts(), 20)
}
