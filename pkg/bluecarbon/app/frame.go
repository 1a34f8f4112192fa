package app

import (
	"context"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/internal"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/session"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/settlement"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

// Renderer produces the view of one screen. It must be a pure function of the
// frame: any state change happens later, when the front end invokes an action.
type Renderer[S router.ID, R router.ID] func(f Frame[S, R]) view.Output

// Frame is everything a renderer may read, plus the capabilities its actions may call.
type Frame[S router.ID, R router.ID] struct {
	App     constants.AppID
	Screen  S
	Session session.Session[R]
	Params  router.Params
	Notice  *session.Notice[S]
	T       *internal.Translator
	Ledger  settlement.Service

	navigate func(S, router.Params) error
	login    func(R)
	verify   func(context.Context, session.Credentials) (R, error)
	logout   func()
	back     func()
}

// Role returns the session role. It is meaningful only while
// Session.Authenticated is true; signed out it is the zero role, which is a
// real role in most apps. Use CurrentRole when the renderer may run signed out.
func (f Frame[S, R]) Role() R {
	role, _ := f.Session.CurrentRole()
	return role
}

// CurrentRole returns the session role and whether one is signed in.
func (f Frame[S, R]) CurrentRole() (R, bool) {
	return f.Session.CurrentRole()
}

// Navigate requests a transition. Denied requests are redirected by the gate.
func (f Frame[S, R]) Navigate(target S, params router.Params) error {
	return f.navigate(target, params)
}

// GoTo returns an action callback that navigates to target.
func (f Frame[S, R]) GoTo(target S, params router.Params) func() {
	return func() {
		_ = f.navigate(target, params)
	}
}

// LoginAs returns an action callback that signs in with role.
func (f Frame[S, R]) LoginAs(role R) func() {
	return func() {
		f.login(role)
	}
}

// SignIn returns a task that verifies creds. The session changes only when the
// front end applies the result.
func (f Frame[S, R]) SignIn(creds session.Credentials) view.Task {
	return func(ctx context.Context) (view.Result, error) {
		role, err := f.verify(ctx, creds)
		if err != nil {
			return view.Result{}, err
		}
		return view.Result{
			Status: f.T.Tf("status.signed_in", map[string]any{"Identifier": creds.Identifier}),
			Apply:  func() { f.login(role) },
		}, nil
	}
}

// Submit returns a task that sends action to the ledger and reports the transaction.
func (f Frame[S, R]) Submit(action settlement.Action) view.Task {
	return func(ctx context.Context) (view.Result, error) {
		receipt, err := f.Ledger.Submit(ctx, action)
		if err != nil {
			return view.Result{}, err
		}
		return view.Result{
			Status: f.T.Tf("status.confirmed", map[string]any{
				"Network": receipt.Network,
				"Tx":      shortHash(receipt.TxHash),
			}),
		}, nil
	}
}

// Receipts returns confirmed ledger receipts of any of kinds, newest first.
// Ledgers that keep no history yield none.
func (f Frame[S, R]) Receipts(kinds ...settlement.Kind) []settlement.Receipt {
	if h, ok := f.Ledger.(settlement.History); ok {
		return h.ReceiptsFor(kinds...)
	}
	return nil
}

// NavAction binds key to a navigation labeled with the target's title.
func (f Frame[S, R]) NavAction(key string, target S, params router.Params) view.Action {
	return view.Action{
		Key:   key,
		Label: f.T.Tf("action.open", map[string]any{"Screen": f.ScreenTitle(target)}),
		Do:    f.GoTo(target, params),
	}
}

// LoginAction binds key to signing in with role.
func (f Frame[S, R]) LoginAction(key string, role R) view.Action {
	return view.Action{
		Key:   key,
		Label: f.T.Tf("action.login_as", map[string]any{"Role": f.RoleName(role)}),
		Do:    f.LoginAs(role),
	}
}

// BackAction binds "b" to back navigation.
func (f Frame[S, R]) BackAction() view.Action {
	return view.Action{Key: "b", Label: f.T.T("action.back"), Do: f.back}
}

// LogoutAction binds "x" to ending the session.
func (f Frame[S, R]) LogoutAction() view.Action {
	return view.Action{Key: "x", Label: f.T.T("action.logout"), Do: f.logout}
}

// Logout returns an action callback that ends the session.
func (f Frame[S, R]) Logout() func() {
	return f.logout
}

// Back returns an action callback that goes to the previous screen.
func (f Frame[S, R]) Back() func() {
	return f.back
}

// ScreenTitle returns the localized title of screen.
func (f Frame[S, R]) ScreenTitle(screen S) string {
	return f.T.T(ScreenMessageID(f.App, screen))
}

// RoleName returns the localized name of role.
func (f Frame[S, R]) RoleName(role R) string {
	return f.T.T(RoleMessageID(f.App, role))
}

// ScreenMessageID is the catalog id of a screen title, e.g. "screen.mobile.wallet".
func ScreenMessageID[S router.ID](app constants.AppID, screen S) string {
	return "screen." + app.String() + "." + screen.String()
}

// RoleMessageID is the catalog id of a role name, e.g. "role.admin.auditor".
func RoleMessageID[R router.ID](app constants.AppID, role R) string {
	return "role." + app.String() + "." + role.String()
}

func shortHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:8] + "..." + hash[len(hash)-6:]
}
