// Package marketplace is the corporate buyer marketplace: verified project
// listings, project details with credit purchase, the corporate wallet with
// retirement, and ESG reports.
package marketplace

import (
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
)

// ParamProject carries the selected listing id to the project screen.
const ParamProject = "project"

// App is a running marketplace instance.
type App = app.App[Screen, Role]

// Frame is the render input of a marketplace screen.
type Frame = app.Frame[Screen, Role]

// Routes returns the marketplace route table. The landing page is both the
// signed-out entry and the buyer's home.
func Routes() *router.RouteTable[Screen, Role] {
	return router.NewRouteTable[Screen, Role](ScreenLanding).
		Allow(ScreenLanding, RoleCorporateBuyer).
		Allow(ScreenProject, RoleCorporateBuyer).
		Allow(ScreenWallet, RoleCorporateBuyer).
		Allow(ScreenReports, RoleCorporateBuyer).
		Home(RoleCorporateBuyer, ScreenLanding)
}

// Screens returns a registry with a renderer for every marketplace screen.
func Screens() *router.Registry[Screen, app.Renderer[Screen, Role]] {
	return router.NewRegistry[Screen, app.Renderer[Screen, Role]]("marketplace").
		MustRegister(ScreenLanding, renderLanding).
		MustRegister(ScreenProject, renderProject).
		MustRegister(ScreenWallet, renderWallet).
		MustRegister(ScreenReports, renderReports)
}

// New creates a signed-out marketplace on the landing page.
func New(opts app.Options) *App {
	return app.MustNew(constants.AppMarketplace, Routes(), AllRoles, Screens(), opts)
}
