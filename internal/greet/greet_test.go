package greet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/greet"
	"github.com/dmathew/go-giftsmart/internal/store"
)

func TestTranslatorDetectsLanguages(t *testing.T) {
	tr := greet.NewTranslator(config.DefaultLanguage)

	assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages)
}

func TestTranslatorEnglish(t *testing.T) {
	tr := greet.NewTranslator("en")

	msg := tr.MsgData(config.TKeyGreetHeader, map[string]interface{}{"Name": "Alice"})
	assert.Equal(t, "Happy Birthday Alice!", msg)
}

func TestTranslatorFrench(t *testing.T) {
	tr := greet.NewTranslator("fr")

	msg := tr.MsgData(config.TKeyGreetHeader, map[string]interface{}{"Name": "Alice"})
	assert.Contains(t, msg, "Joyeux anniversaire Alice")
}

func TestTranslatorMissingKeyReturnsKey(t *testing.T) {
	tr := greet.NewTranslator("en")

	assert.Equal(t, "no_such_key", tr.Msg("no_such_key"))
}

func TestTranslatorEmptyLanguageFallsBack(t *testing.T) {
	tr := greet.NewTranslator("")

	msg := tr.Msg(config.TKeySectionToday)
	assert.Equal(t, "Today", msg)
}

func TestStylesOrder(t *testing.T) {
	styles := greet.Styles()

	require.Len(t, styles, 6)
	assert.Equal(t, config.DefaultCardStyle, styles[0])
}

func TestStyleEmoji(t *testing.T) {
	assert.Equal(t, "🎈", greet.StyleEmoji("Balloons"))
	assert.Equal(t, "🎂", greet.StyleEmoji("Nonexistent"), "unknown style uses default")
}

func TestStyleForCloseFriendPreference(t *testing.T) {
	c := &greet.Composer{T: greet.NewTranslator("en")}

	tests := []struct {
		name  string
		entry store.Entry
		want  string
	}{
		{
			name:  "close friend with preference",
			entry: store.Entry{CloseFriend: true, PreferredCardStyle: "Stars"},
			want:  "Stars",
		},
		{
			name:  "close friend without preference",
			entry: store.Entry{CloseFriend: true},
			want:  config.DefaultCardStyle,
		},
		{
			name:  "preference ignored for regular contact",
			entry: store.Entry{CloseFriend: false, PreferredCardStyle: "Stars"},
			want:  config.DefaultCardStyle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.StyleFor(tt.entry))
		})
	}
}

func TestMessageLayout(t *testing.T) {
	c := &greet.Composer{T: greet.NewTranslator("en")}

	msg := c.Message("Bob", "Balloons", "")

	lines := strings.Split(msg, "\n\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "🎈 Happy Birthday Bob! 🎈", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "🎈 "))
	assert.True(t, strings.HasSuffix(lines[1], " 🎈"))
	assert.Equal(t, "With love", lines[2])
}

func TestMessageWithPersonalNote(t *testing.T) {
	c := &greet.Composer{T: greet.NewTranslator("en")}

	msg := c.Message("Bob", "Stars", "See you at the party!")

	lines := strings.Split(msg, "\n\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "See you at the party!", lines[2])
}

func TestMessageFor(t *testing.T) {
	c := &greet.Composer{T: greet.NewTranslator("en")}
	e := store.Entry{
		Name:               "Carol",
		CloseFriend:        true,
		PreferredCardStyle: "Flowers",
		Notes:              "Loves tulips",
	}

	msg := c.MessageFor(e)

	assert.Contains(t, msg, "🌸 Happy Birthday Carol! 🌸")
	assert.Contains(t, msg, "Loves tulips")
}
