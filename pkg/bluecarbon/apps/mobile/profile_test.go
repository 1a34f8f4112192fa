package mobile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
)

func TestProfilesCoverEveryRole(t *testing.T) {
	var profiles *router.Registry[ProfileKey, app.Renderer[Screen, Role]]
	require.NotPanics(t, func() { profiles = Profiles() })
	assert.NoError(t, checkProfiles(profiles, AllRoles))
	assert.True(t, profiles.Sealed())
}

func TestIncompleteProfilesFailComposition(t *testing.T) {
	partial := router.NewRegistry[ProfileKey, app.Renderer[Screen, Role]]("partial").
		MustRegister(ProfileKey{ScreenProfile, RoleCommunityMember}, renderMemberProfile).
		MustRegister(ProfileKey{ScreenProfile, RoleCommunityLeader}, renderLeaderProfile)

	err := checkProfiles(partial, AllRoles)
	require.Error(t, err)
	assert.True(t, router.IsUnknown(err))
	assert.Contains(t, err.Error(), "profile/community-agent")
}
