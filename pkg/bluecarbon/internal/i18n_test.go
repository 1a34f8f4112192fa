package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLanguages(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "hi"}, catalog.Languages())
}

func TestTranslatorMatchesAndFallsBack(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	cases := []struct {
		lang string
		want string
	}{
		{"en", "en"},
		{"hi-IN", "hi"},
		{"ta", "en"},
		{"not a tag", "en"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.Translator(tc.lang).Language(), tc.lang)
	}
}

func TestTranslatorMessages(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	en := catalog.Translator("en")
	assert.Equal(t, "Wallet", en.T("screen.mobile.wallet"))
	assert.Equal(t, "Sign in as Auditor", en.Tf("action.login_as", map[string]any{"Role": "Auditor"}))
	assert.Equal(t, "no.such.message", en.T("no.such.message"))

	hi := catalog.Translator("hi")
	assert.Equal(t, "वॉलेट", hi.T("screen.mobile.wallet"))
}

func TestCatalogsDefineTheSameMessages(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	en, hi := catalog.Translator("en"), catalog.Translator("hi")
	for _, id := range []string{
		"notice.denied", "action.back", "action.logout", "action.open",
		"screen.admin.issuance", "role.marketplace.corporate-buyer", "status.confirmed",
	} {
		assert.NotEqual(t, id, en.T(id), id)
		assert.NotEqual(t, en.T(id), hi.T(id), id)
	}
}

func TestNilTranslatorReturnsIDs(t *testing.T) {
	var tr *Translator
	assert.Equal(t, "screen.mobile.home", tr.T("screen.mobile.home"))
	assert.Equal(t, "en", tr.Language())
}
