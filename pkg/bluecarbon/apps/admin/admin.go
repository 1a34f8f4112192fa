// Package admin is the registry administration portal: staff sign-in, the
// operations dashboard, project management, field verification and credit issuance.
package admin

import (
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/session"
)

// ParamProject carries the selected project id between screens.
const ParamProject = "project"

// App is a running admin portal instance.
type App = app.App[Screen, Role]

// Frame is the render input of an admin screen.
type Frame = app.Frame[Screen, Role]

// Routes returns the admin route table. Auditors verify, only administrators issue credits.
func Routes() *router.RouteTable[Screen, Role] {
	t := router.NewRouteTable[Screen, Role](ScreenLogin).
		AllowAll(ScreenDashboard, ScreenOverallImpact, ScreenProjectManagement).
		Allow(ScreenVerification, RoleAdmin, RoleAuditor).
		Allow(ScreenIssuance, RoleAdmin)
	for _, role := range AllRoles {
		t.Home(role, ScreenDashboard)
	}
	return t
}

// Screens returns a registry with a renderer for every admin screen.
func Screens() *router.Registry[Screen, app.Renderer[Screen, Role]] {
	return router.NewRegistry[Screen, app.Renderer[Screen, Role]]("admin").
		MustRegister(ScreenLogin, renderLogin).
		MustRegister(ScreenDashboard, renderDashboard).
		MustRegister(ScreenOverallImpact, renderOverallImpact).
		MustRegister(ScreenProjectManagement, renderProjectManagement).
		MustRegister(ScreenVerification, renderVerification).
		MustRegister(ScreenIssuance, renderIssuance)
}

// New creates a signed-out admin portal on the login screen.
// Role claims are mapped with ParseRole; a real identity provider replaces the
// verifier through the gate.
func New(opts app.Options) *App {
	a := app.MustNew(constants.AppAdmin, Routes(), AllRoles, Screens(), opts)
	a.Gate().WithVerifier(session.NewStaticVerifier(ParseRole))
	return a
}
