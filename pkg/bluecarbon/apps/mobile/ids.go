package mobile

import "fmt"

// Screen is a mobile app screen.
type Screen int

const (
	ScreenOnboarding Screen = iota
	ScreenHome
	ScreenUpload
	ScreenWallet
	ScreenLeaderboard
	ScreenProjects
	ScreenProfile
)

// AllScreens lists every mobile screen.
var AllScreens = []Screen{
	ScreenOnboarding, ScreenHome, ScreenUpload, ScreenWallet,
	ScreenLeaderboard, ScreenProjects, ScreenProfile,
}

func (s Screen) String() string {
	switch s {
	case ScreenOnboarding:
		return "onboarding"
	case ScreenHome:
		return "home"
	case ScreenUpload:
		return "upload"
	case ScreenWallet:
		return "wallet"
	case ScreenLeaderboard:
		return "leaderboard"
	case ScreenProjects:
		return "projects"
	case ScreenProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// ParseScreen maps a screen name such as "leaderboard" onto its Screen.
func ParseScreen(name string) (Screen, error) {
	for _, s := range AllScreens {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown mobile screen %q", name)
}

// Role is a community role.
type Role int

const (
	RoleCommunityMember Role = iota
	RoleCommunityLeader
	RoleCommunityAgent
)

// AllRoles lists every community role.
var AllRoles = []Role{RoleCommunityMember, RoleCommunityLeader, RoleCommunityAgent}

func (r Role) String() string {
	switch r {
	case RoleCommunityMember:
		return "community-member"
	case RoleCommunityLeader:
		return "community-leader"
	case RoleCommunityAgent:
		return "community-agent"
	default:
		return "unknown"
	}
}

// ParseRole maps a role name such as "community-agent" onto its Role.
func ParseRole(name string) (Role, error) {
	for _, r := range AllRoles {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown community role %q", name)
}
