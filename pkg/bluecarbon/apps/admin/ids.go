package admin

import "fmt"

// Screen is an admin portal screen.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenOverallImpact
	ScreenProjectManagement
	ScreenVerification
	ScreenIssuance
)

// AllScreens lists every admin screen.
var AllScreens = []Screen{
	ScreenLogin, ScreenDashboard, ScreenOverallImpact,
	ScreenProjectManagement, ScreenVerification, ScreenIssuance,
}

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenDashboard:
		return "dashboard"
	case ScreenOverallImpact:
		return "overall-impact"
	case ScreenProjectManagement:
		return "project-management"
	case ScreenVerification:
		return "verification"
	case ScreenIssuance:
		return "issuance"
	default:
		return "unknown"
	}
}

// ParseScreen maps a screen name such as "overall-impact" onto its Screen.
// The legacy name "projects" is accepted for ScreenProjectManagement.
func ParseScreen(name string) (Screen, error) {
	if name == "projects" {
		return ScreenProjectManagement, nil
	}
	for _, s := range AllScreens {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown admin screen %q", name)
}

// Role is a registry staff role.
type Role int

const (
	RoleAdmin Role = iota
	RoleAuditor
	RoleNGO
)

// AllRoles lists every staff role.
var AllRoles = []Role{RoleAdmin, RoleAuditor, RoleNGO}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleAuditor:
		return "auditor"
	case RoleNGO:
		return "ngo"
	default:
		return "unknown"
	}
}

// ParseRole maps a role claim such as "auditor" onto its Role.
func ParseRole(name string) (Role, error) {
	for _, r := range AllRoles {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown admin role %q", name)
}
