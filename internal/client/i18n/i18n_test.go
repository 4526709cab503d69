package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := NewBundle()
	require.NoError(t, err)
	return b
}

func TestBundle_CatalogsAreComplete(t *testing.T) {
	require.Equal(t, len(english), len(turkish))
	for key := range english {
		_, ok := turkish[key]
		assert.True(t, ok, "turkish misses %q", key)
	}
}

func TestBundle_Translate(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "Sign Up", b.Translate(language.English, SignUp))
	assert.Equal(t, "Kayıt Ol", b.Translate(language.Turkish, SignUp))
	assert.Equal(t, "Password mismatch", b.Translate(language.English, PasswordMismatchValidation))
	assert.Equal(t, "no-such-key", b.Translate(language.English, "no-such-key"))
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    language.Tag
		wantErr bool
	}{
		{in: "en", want: language.English},
		{in: "en-US", want: language.English},
		{in: "TR", want: language.Turkish},
		{in: "de", wantErr: true},
		{in: "", wantErr: true},
		{in: "!!", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrUnsupportedLanguage, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLocale_SetNotifiesAndTranslates(t *testing.T) {
	l, err := NewLocale(newBundle(t), "en")
	require.NoError(t, err)

	var seen []string
	l.OnChange(func(lang string) { seen = append(seen, lang) })

	assert.Equal(t, "Sign Up", l.T(SignUp))

	require.NoError(t, l.Set("tr"))
	assert.Equal(t, "tr", l.Language())
	assert.Equal(t, "Kayıt Ol", l.T(SignUp))

	require.NoError(t, l.Set("en"))
	assert.Equal(t, "Sign Up", l.T(SignUp))

	assert.Equal(t, []string{"en", "tr", "en"}, seen)
}

func TestLocale_RejectsUnsupported(t *testing.T) {
	l, err := NewLocale(newBundle(t), "en")
	require.NoError(t, err)

	require.ErrorIs(t, l.Set("fr"), ErrUnsupportedLanguage)
	assert.Equal(t, "en", l.Language())

	_, err = NewLocale(newBundle(t), "xx")
	require.Error(t, err)
}

func TestLocale_ListenerAddedDuringNotifyWaitsForNextChange(t *testing.T) {
	l, err := NewLocale(newBundle(t), "en")
	require.NoError(t, err)

	var late []string
	registered := false
	l.OnChange(func(string) {
		if !registered {
			return
		}
		registered = false
		l.OnChange(func(lang string) { late = append(late, lang) })
	})

	registered = true
	require.NoError(t, l.Set("tr"))
	// called once on registration with the current value
	assert.Equal(t, []string{"tr"}, late)

	require.NoError(t, l.Set("en"))
	assert.Equal(t, []string{"tr", "en"}, late)
}
