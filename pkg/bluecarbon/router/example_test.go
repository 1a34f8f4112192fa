package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
)

// Screen identifiers - use typed constants for compile-time safety
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenCatalog
	ScreenDetail
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenCatalog:
		return "catalog"
	case ScreenDetail:
		return "detail"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}

type Role int

const (
	RoleGuest Role = iota
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleOwner:
		return "owner"
	default:
		return "unknown"
	}
}

func exampleTable() *router.RouteTable[Screen, Role] {
	return router.NewRouteTable[Screen, Role](ScreenLogin).
		AllowAll(ScreenCatalog, ScreenDetail).
		Allow(ScreenSettings, RoleOwner).
		Home(RoleGuest, ScreenCatalog).
		Home(RoleOwner, ScreenCatalog)
}

// Example demonstrates role-gated navigation against a route table.
func Example() {
	r := router.New(exampleTable())
	fmt.Println("start:", r.Current())

	_ = r.Navigate(ScreenCatalog, nil, RoleGuest)
	_ = r.Navigate(ScreenDetail, router.Params{"item": "42"}, RoleGuest)
	fmt.Println("now:", r.Current(), "item", r.Params().String("item"))

	if err := r.Navigate(ScreenSettings, nil, RoleGuest); router.IsUnreachable(err) {
		fmt.Println("denied:", err)
	}
	fmt.Println("still:", r.Current())

	// Output:
	// start: login
	// now: detail item 42
	// denied: router: navigate settings: screen not reachable for role
	// still: detail
}

// Example_backNavigation demonstrates stack-based back navigation with params restored.
func Example_backNavigation() {
	r := router.New(exampleTable())

	r.OnTransition(func(t router.Transition[Screen]) {
		fmt.Printf("%s: %s -> %s\n", t.Kind, t.From, t.To)
	})

	_ = r.Navigate(ScreenCatalog, router.Params{"page": "2"}, RoleOwner)
	_ = r.Navigate(ScreenDetail, router.Params{"item": "7"}, RoleOwner)
	r.Back(RoleOwner)
	fmt.Println("page:", r.Params().String("page"))

	// Output:
	// forward: login -> catalog
	// forward: catalog -> detail
	// back: detail -> catalog
	// page: 2
}

// Example_registry demonstrates a second-level registry keyed by screen and role.
func Example_registry() {
	type key struct {
		Screen Screen
		Role   Role
	}

	profiles := router.NewRegistry[key, func() string]("profiles")
	profiles.
		MustRegister(key{ScreenSettings, RoleOwner}, func() string { return "owner settings" }).
		MustRegister(key{ScreenSettings, RoleGuest}, func() string { return "guest settings" })
	profiles.Seal()

	render, _ := profiles.Resolve(key{ScreenSettings, RoleOwner})
	fmt.Println(render())

	_, err := profiles.Resolve(key{ScreenDetail, RoleOwner})
	fmt.Println(router.IsUnknown(err))

	// Output:
	// owner settings
	// true
}
