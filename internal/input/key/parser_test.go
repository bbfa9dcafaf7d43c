package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		spec string
		want Input
	}{
		{"a", Input{Code: CodeRune, Rune: 'a'}},
		{"A", Input{Code: CodeRune, Rune: 'A'}},
		{"9", Input{Code: CodeRune, Rune: '9'}},
		{"-", Input{Code: CodeRune, Rune: '-'}},
		{"C", Input{Code: CodeRune, Rune: 'C'}},
		{"é", Input{Code: CodeRune, Rune: 'é'}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNamedKeys(t *testing.T) {
	tests := []struct {
		spec string
		want Code
	}{
		{"space", CodeSpace},
		{"esc", CodeEscape},
		{"enter", CodeEnter},
		{"tab", CodeTab},
		{"backspace", CodeBackspace},
		{"del", CodeDelete},
		{"pgup", CodePageUp},
		{"up", CodeUp},
		{"right", CodeRight},
		{"f1", CodeF1},
		{"f12", CodeF12},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code)
			assert.Zero(t, got.Rune)
			assert.True(t, got.Mods.IsEmpty())
		})
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		spec string
		want Input
	}{
		{"C-x", Input{Code: CodeRune, Rune: 'x', Mods: ModCtrl}},
		{"A-f4", Input{Code: CodeF4, Mods: ModAlt}},
		{"S-tab", Input{Code: CodeTab, Mods: ModShift}},
		{"C-A-S-del", Input{Code: CodeDelete, Mods: ModCtrl | ModAlt | ModShift}},
		{"C--", Input{Code: CodeRune, Rune: '-', Mods: ModCtrl}},
		{"A-C", Input{Code: CodeRune, Rune: 'C', Mods: ModAlt}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseModifierOrderIndependent(t *testing.T) {
	a := MustParse("C-A-x")
	b := MustParse("A-C-x")
	assert.Equal(t, a, b)

	seen := map[Input]bool{a: true}
	assert.True(t, seen[b], "inputs parsed with different modifier order must hash identically")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmpty},
		{"C-", ErrInvalid},
		{"A-S-", ErrInvalid},
		{"C-C-x", ErrInvalid},
		{"foo", ErrInvalid},
		{"Space", ErrInvalid},
		{"F1", ErrInvalid},
		{"x-y", ErrInvalid},
		{" ", ErrInvalid},
		{"\t", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := Parse(tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.spec, pe.Spec)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	specs := append([]string{}, Names()...)
	specs = append(specs, "a", "Z", "0", "-", "/", "C-a", "A-x", "S-tab", "C-A-S-f5", "C--", "A-space")

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			in, err := Parse(spec)
			require.NoError(t, err)
			assert.Equal(t, spec, in.String())
		})
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("S-C-up")
	require.NoError(t, err)
	assert.Equal(t, "C-S-up", got)

	_, err = Normalize("C-")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}
