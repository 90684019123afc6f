package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchComponent(t *testing.T) {
	cases := map[string]struct {
		pattern string
		name    string
		want    bool
	}{
		"exact equality":               {"hello", "hello", true},
		"plain mismatch":               {"hello", "help", false},
		"shorter input":                {"hello", "hell", false},
		"longer input":                 {"hell", "hello", false},
		"empty matches empty":          {"", "", true},
		"empty never matches content":  {"", "anything", false},
		"bare star matches anything":   {"*", "pretty-much-anything", true},
		"bare star matches dotfiles":   {"*", ".hidden", true},
		"suffix pattern":               {"*.txt", "notes.txt", true},
		"suffix pattern near miss":     {"*.txt", "notes.text", false},
		"suffix without the dot":       {"*.txt", "txt", false},
		"star consuming zero":          {"*.txt", ".txt", true},
		"prefix pattern":               {"foo*", "foobar", true},
		"prefix pattern exact":         {"foo*", "foo", true},
		"prefix pattern mismatch":      {"foo*", "fobar", false},
		"star in the middle":           {"a*c", "abc", true},
		"middle star consuming zero":   {"a*c", "ac", true},
		"several stars":                {"*a*b*", "XaYbZ", true},
		"several stars strict":         {"a*b*c", "a-b-c", true},
		"star backtracks":              {"*ab", "aab", true},
		"star against repeated target": {"a*b", "aXbYb", true},
		"hidden file dragnet":          {"*hidde*", ".hiddenfile", true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := MatchComponent(tc.pattern, tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchComponent_AdjacentStars(t *testing.T) {
	t.Run("adjacent stars are rejected", func(t *testing.T) {
		_, err := MatchComponent("a**b", "aXb")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadPattern)
	})

	t.Run("adjacent trailing stars are rejected", func(t *testing.T) {
		_, err := MatchComponent("a**", "aX")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadPattern)
	})

	t.Run("stars the input never reaches stay unreported", func(t *testing.T) {
		ok, err := MatchComponent("ab**", "ab")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
