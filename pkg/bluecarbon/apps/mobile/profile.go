package mobile

import (
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

// ProfileKey selects a profile renderer by screen and role.
type ProfileKey struct {
	Screen Screen
	Role   Role
}

func (k ProfileKey) String() string {
	return k.Screen.String() + "/" + k.Role.String()
}

// Profiles returns the second-level registry that picks the profile view for each role.
// It panics when a role in AllRoles has no profile.
func Profiles() *router.Registry[ProfileKey, app.Renderer[Screen, Role]] {
	r := router.NewRegistry[ProfileKey, app.Renderer[Screen, Role]]("mobile profile").
		MustRegister(ProfileKey{ScreenProfile, RoleCommunityMember}, renderMemberProfile).
		MustRegister(ProfileKey{ScreenProfile, RoleCommunityLeader}, renderLeaderProfile).
		MustRegister(ProfileKey{ScreenProfile, RoleCommunityAgent}, renderAgentProfile)
	r.Seal()
	if err := checkProfiles(r, AllRoles); err != nil {
		panic(err)
	}
	return r
}

func checkProfiles(r *router.Registry[ProfileKey, app.Renderer[Screen, Role]], roles []Role) error {
	keys := make([]ProfileKey, 0, len(roles))
	for _, role := range roles {
		keys = append(keys, ProfileKey{ScreenProfile, role})
	}
	return r.Require(keys...)
}

// renderProfile dispatches on the session role. Profiles covers every role
// the app grants, so a miss means a role outside AllRoles was logged in.
func renderProfile(profiles *router.Registry[ProfileKey, app.Renderer[Screen, Role]]) app.Renderer[Screen, Role] {
	return func(f Frame) view.Output {
		role, ok := f.CurrentRole()
		if !ok {
			return view.Output{}
		}
		render, err := profiles.Resolve(ProfileKey{ScreenProfile, role})
		if err != nil {
			return view.Output{Notice: err.Error(), NoticeTone: view.ToneCritical}
		}
		return render(f)
	}
}
