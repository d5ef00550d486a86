package i18n

import (
	"embed"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockLocaleProvider struct {
	LocaleProvider
}

func (m MockLocaleProvider) GetLocales() ([]string, error) {
	return nil, errors.New("mock error")
}

//go:embed __fixtures__/*.json
var testData embed.FS

func useFixtures(t *testing.T) {
	t.Helper()
	previousFS := langFS
	previousDir := langDir
	langFS = testData
	langDir = "__fixtures__"
	ResetForTesting()
	t.Cleanup(func() {
		langFS = previousFS
		langDir = previousDir
		ResetForTesting()
	})
}

func TestSimpleTranslations(t *testing.T) {
	useFixtures(t)

	t.Run("simple translation", func(t *testing.T) {
		os.Unsetenv("LCOVSUM_TEST")

		actual := T("test.simple")
		assert.Equal(t, "Hello World", actual)
	})

	t.Run("translation with variables", func(t *testing.T) {
		os.Unsetenv("LCOVSUM_TEST")

		actual := T("test.vars", Tvars{
			Data: &TData{"covered": 1, "total": 3},
		})
		assert.Equal(t, "Covered 1 of 3", actual)
	})
}

func TestTestModeEchoesKeys(t *testing.T) {
	t.Setenv("LCOVSUM_TEST", "true")

	assert.Equal(t, "test.simple", T("test.simple"))

	withArgs := T("test.vars", Tvars{Count: 2})
	assert.Contains(t, withArgs, "test.vars")
	assert.Contains(t, withArgs, "Count: 2")
}

func TestGetUserLocalesFallsBackOnProviderError(t *testing.T) {
	t.Setenv("LANG", "fr_FR")
	os.Unsetenv("LANG")

	previous := localeProvider
	localeProvider = MockLocaleProvider{}
	t.Cleanup(func() { localeProvider = previous })

	assert.Equal(t, []string{"en"}, getUserLocales())
}

func TestBuildLocalizerLocales(t *testing.T) {
	t.Run("canonicalizes and adds base languages", func(t *testing.T) {
		locales := buildLocalizerLocales([]string{"en_GB", "de"})
		assert.Equal(t, []string{"en-GB", "en", "de"}, locales)
	})

	t.Run("skips empty and unparseable entries", func(t *testing.T) {
		locales := buildLocalizerLocales([]string{"", "!!!", "fr"})
		assert.Equal(t, []string{"fr"}, locales)
	})
}
