// Package mobile is the community field app: onboarding, a home dashboard,
// field data upload, a credit wallet, the team leaderboard and role-specific profiles.
package mobile

import (
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
)

// Navigation params understood by mobile screens.
const (
	ParamTab  = "tab"  // Home: initial tab, "projects" or empty
	ParamBulk = "bulk" // Upload: open with the bulk upload tools first (agents only)
)

// App is a running mobile app instance.
type App = app.App[Screen, Role]

// Frame is the render input of a mobile screen.
type Frame = app.Frame[Screen, Role]

// Routes returns the mobile route table. Every community role lands on Home;
// only community leaders manage the wallet.
func Routes() *router.RouteTable[Screen, Role] {
	t := router.NewRouteTable[Screen, Role](ScreenOnboarding).
		AllowAll(ScreenHome, ScreenUpload, ScreenLeaderboard, ScreenProjects, ScreenProfile).
		Allow(ScreenWallet, RoleCommunityLeader)
	for _, role := range AllRoles {
		t.Home(role, ScreenHome)
	}
	return t
}

// Screens returns a registry with a renderer for every mobile screen.
func Screens() *router.Registry[Screen, app.Renderer[Screen, Role]] {
	return router.NewRegistry[Screen, app.Renderer[Screen, Role]]("mobile").
		MustRegister(ScreenOnboarding, renderOnboarding).
		MustRegister(ScreenHome, renderHome).
		MustRegister(ScreenUpload, renderUpload).
		MustRegister(ScreenWallet, renderWallet).
		MustRegister(ScreenLeaderboard, renderLeaderboard).
		MustRegister(ScreenProjects, renderProjects).
		MustRegister(ScreenProfile, renderProfile(Profiles()))
}

// New creates a signed-out mobile app on the onboarding screen.
func New(opts app.Options) *App {
	return app.MustNew(constants.AppMobile, Routes(), AllRoles, Screens(), opts)
}
