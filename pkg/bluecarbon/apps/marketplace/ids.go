package marketplace

import "fmt"

// Screen is a marketplace screen.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenProject
	ScreenWallet
	ScreenReports
)

// AllScreens lists every marketplace screen.
var AllScreens = []Screen{ScreenLanding, ScreenProject, ScreenWallet, ScreenReports}

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenProject:
		return "project"
	case ScreenWallet:
		return "wallet"
	case ScreenReports:
		return "reports"
	default:
		return "unknown"
	}
}

// ParseScreen maps a screen name such as "reports" onto its Screen.
func ParseScreen(name string) (Screen, error) {
	for _, s := range AllScreens {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown marketplace screen %q", name)
}

// Role is a marketplace participant role.
type Role int

const (
	RoleCorporateBuyer Role = iota
)

// AllRoles lists every marketplace role.
var AllRoles = []Role{RoleCorporateBuyer}

func (r Role) String() string {
	switch r {
	case RoleCorporateBuyer:
		return "corporate-buyer"
	default:
		return "unknown"
	}
}

// ParseRole maps a role name onto its Role.
func ParseRole(name string) (Role, error) {
	if name == RoleCorporateBuyer.String() {
		return RoleCorporateBuyer, nil
	}
	return 0, fmt.Errorf("unknown marketplace role %q", name)
}
