package government

import "fmt"

// Screen is a government portal screen.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenAnalytics
)

// AllScreens lists every government screen.
var AllScreens = []Screen{ScreenDashboard, ScreenAnalytics}

func (s Screen) String() string {
	switch s {
	case ScreenDashboard:
		return "dashboard"
	case ScreenAnalytics:
		return "analytics"
	default:
		return "unknown"
	}
}

// ParseScreen maps a screen name onto its Screen.
func ParseScreen(name string) (Screen, error) {
	for _, s := range AllScreens {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown government screen %q", name)
}

// Role is a government portal role.
type Role int

const (
	RoleGovernmentViewer Role = iota
)

// AllRoles lists every government role.
var AllRoles = []Role{RoleGovernmentViewer}

func (r Role) String() string {
	switch r {
	case RoleGovernmentViewer:
		return "government-viewer"
	default:
		return "unknown"
	}
}

// ParseRole maps a role name onto its Role.
func ParseRole(name string) (Role, error) {
	if name == RoleGovernmentViewer.String() {
		return RoleGovernmentViewer, nil
	}
	return 0, fmt.Errorf("unknown government role %q", name)
}
