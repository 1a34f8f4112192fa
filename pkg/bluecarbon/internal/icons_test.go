package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
)

func TestEveryScreenIconIsBundled(t *testing.T) {
	names := IconNames()
	for _, icon := range []string{
		constants.IconLogin, constants.IconHome, constants.IconUpload, constants.IconWallet,
		constants.IconTrophy, constants.IconFolder, constants.IconProfile, constants.IconDashboard,
		constants.IconCheck, constants.IconCredit, constants.IconChart, constants.IconGlobe,
		constants.IconReport, constants.IconLeaf,
	} {
		assert.Contains(t, names, icon)
	}
}

func TestRasterizeIcon(t *testing.T) {
	img, err := RasterizeIcon(constants.IconLeaf, 32)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	painted := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted = true
			break
		}
	}
	assert.True(t, painted, "icon drew no pixels")
}

func TestRasterizeIconErrors(t *testing.T) {
	_, err := RasterizeIcon("missing", 32)
	assert.Error(t, err)

	_, err = RasterizeIcon(constants.IconLeaf, 0)
	assert.ErrorContains(t, err, "invalid size")
}
