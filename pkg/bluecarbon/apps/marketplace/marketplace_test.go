package marketplace_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/apps/marketplace"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/internal"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/settlement"
)

func newApp(t *testing.T) (*marketplace.App, *settlement.Simulated) {
	t.Helper()
	catalog, err := internal.DefaultCatalog()
	require.NoError(t, err)
	ledger := settlement.NewSimulated(0, "Polygon Mainnet")
	return marketplace.New(app.Options{Translator: catalog.Translator("en"), Ledger: ledger}), ledger
}

func TestLandingOffersSignInWhileSignedOut(t *testing.T) {
	a, _ := newApp(t)

	require.NoError(t, a.Navigate(marketplace.ScreenWallet, nil))
	assert.Equal(t, marketplace.ScreenLanding, a.Current())

	out, err := a.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{"l"}, out.ActionKeys())
	assert.Equal(t, "Blue Carbon Marketplace", out.Title)

	action, _ := out.Action("l")
	action.Do()
	assert.True(t, a.Authenticated())
	assert.Equal(t, marketplace.ScreenLanding, a.Current())
}

func TestSelectProjectAndPurchase(t *testing.T) {
	a, ledger := newApp(t)
	a.Login(marketplace.RoleCorporateBuyer)

	out, err := a.Render()
	require.NoError(t, err)
	selectKER, ok := out.Action("2")
	require.True(t, ok)
	selectKER.Do()

	require.Equal(t, marketplace.ScreenProject, a.Current())
	out, err = a.Render()
	require.NoError(t, err)
	assert.Equal(t, "Kerala Coastal Restoration", out.Title)

	purchase, ok := out.Action("u")
	require.True(t, ok)
	_, err = purchase.Task(context.Background())
	require.NoError(t, err)

	receipts := ledger.ReceiptsFor(settlement.KindPurchase)
	require.Len(t, receipts, 1)
	assert.Equal(t, "KER-002", receipts[0].Action.ProjectID)

	a.Back()
	assert.Equal(t, marketplace.ScreenLanding, a.Current())
}

func TestUnknownProjectRendersNotice(t *testing.T) {
	a, _ := newApp(t)
	a.Login(marketplace.RoleCorporateBuyer)
	require.NoError(t, a.Navigate(marketplace.ScreenProject, router.Params{marketplace.ParamProject: "XYZ"}))

	out, err := a.Render()
	require.NoError(t, err)
	assert.Equal(t, "Project Details", out.Title)
	assert.NotEmpty(t, out.Notice)
	_, ok := out.Action("u")
	assert.False(t, ok)
}

func TestWalletRetiresCredits(t *testing.T) {
	a, ledger := newApp(t)
	a.Login(marketplace.RoleCorporateBuyer)
	require.NoError(t, a.Navigate(marketplace.ScreenWallet, nil))

	out, err := a.Render()
	require.NoError(t, err)
	require.Len(t, out.Sections, 1)

	retire, ok := out.Action("t")
	require.True(t, ok)
	_, err = retire.Task(context.Background())
	require.NoError(t, err)
	assert.Len(t, ledger.ReceiptsFor(settlement.KindRetire), 1)

	out, err = a.Render()
	require.NoError(t, err)
	require.Len(t, out.Sections, 2)
	assert.Equal(t, "Ledger Activity", out.Sections[1].Heading)
}

func TestLedgerActivityIsOneTimeline(t *testing.T) {
	a, ledger := newApp(t)
	a.Login(marketplace.RoleCorporateBuyer)
	ctx := context.Background()

	_, err := ledger.Submit(ctx, settlement.Action{Kind: settlement.KindRetire, Amount: 5, Reason: "Scope 1 offset"})
	require.NoError(t, err)
	_, err = ledger.Submit(ctx, settlement.Action{Kind: settlement.KindPurchase, ProjectID: "SUN-001", Amount: 100})
	require.NoError(t, err)
	_, err = ledger.Submit(ctx, settlement.Action{Kind: settlement.KindRetire, Amount: 7, Reason: "Scope 3 offset"})
	require.NoError(t, err)

	require.NoError(t, a.Navigate(marketplace.ScreenWallet, nil))
	out, err := a.Render()
	require.NoError(t, err)
	require.Len(t, out.Sections, 2)

	lines := out.Sections[1].Lines
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "retire 7 "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "purchase 100 "), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "retire 5 "), lines[2])
}

func TestCancelledPurchaseRecordsNothing(t *testing.T) {
	catalog, err := internal.DefaultCatalog()
	require.NoError(t, err)
	ledger := settlement.NewSimulated(3*time.Second, "Polygon Mainnet")
	a := marketplace.New(app.Options{Translator: catalog.Translator("en"), Ledger: ledger})
	a.Login(marketplace.RoleCorporateBuyer)
	require.NoError(t, a.Navigate(marketplace.ScreenProject, router.Params{marketplace.ParamProject: "SUN-001"}))

	out, err := a.Render()
	require.NoError(t, err)
	purchase, _ := out.Action("u")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = purchase.Task(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ledger.Receipts())
}

func TestLogoutReturnsToPublicLanding(t *testing.T) {
	a, _ := newApp(t)
	a.Login(marketplace.RoleCorporateBuyer)
	require.NoError(t, a.Navigate(marketplace.ScreenReports, nil))

	a.Logout()
	assert.False(t, a.Authenticated())
	assert.Equal(t, marketplace.ScreenLanding, a.Current())
	assert.EqualValues(t, 1, a.Stats().Logouts)
}
