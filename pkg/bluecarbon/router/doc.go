// Package router provides role-gated screen navigation with declarative route tables.
//
// Each app defines its own screen and role identifiers as typed constants, so
// identifiers from different apps cannot be mixed. Reachability rules live in a
// RouteTable built once at composition time; a Router validates every transition
// against it; a Registry maps screens to whatever render capability the app uses.
//
// # Basic Usage
//
//	// Define screen and role identifiers as typed constants
//	type Screen int
//
//	const (
//	    ScreenLogin Screen = iota
//	    ScreenDashboard
//	    ScreenReports
//	)
//
//	type Role int
//
//	const (
//	    RoleViewer Role = iota
//	    RoleEditor
//	)
//
//	// Declare who may reach what
//	table := router.NewRouteTable[Screen, Role](ScreenLogin).
//	    AllowAll(ScreenDashboard).
//	    Allow(ScreenReports, RoleEditor).
//	    Home(RoleViewer, ScreenDashboard).
//	    Home(RoleEditor, ScreenDashboard)
//
//	r := router.New(table)
//	if err := r.Navigate(ScreenReports, nil, RoleViewer); router.IsUnreachable(err) {
//	    // state is unchanged; the caller picks the fallback
//	}
//
// # Back Navigation
//
// Forward navigation pushes the previous screen and its params onto a bounded
// Stack. Back pops entries until it finds one the role may still reach.
//
// # Registries
//
// Registry is a write-once lookup. Register fails on duplicates, Seal ends the
// composition phase, and Resolve fails with ErrUnknownScreen for absent keys.
// The key does not have to be a Screen: a registry keyed by a (screen, role)
// pair gives a declarative second-level dispatch.
package router
