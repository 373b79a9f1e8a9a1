package greet

import (
	"strings"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/store"
)

// cardStyles maps each e-card design to its decoration emoji. Order matters
// for menus, so the list form is kept alongside the lookup.
var cardStyles = []struct {
	Name  string
	Emoji string
}{
	{"Birthday Cake", "🎂"},
	{"Balloons", "🎈"},
	{"Gift Box", "🎁"},
	{"Party Hat", "🎉"},
	{"Flowers", "🌸"},
	{"Stars", "⭐"},
}

// Styles returns the available card design names in display order.
func Styles() []string {
	names := make([]string, len(cardStyles))
	for i, s := range cardStyles {
		names[i] = s.Name
	}
	return names
}

// StyleEmoji returns the emoji for a design, falling back to the default
// design's emoji for unknown names.
func StyleEmoji(name string) string {
	for _, s := range cardStyles {
		if s.Name == name {
			return s.Emoji
		}
	}
	return StyleEmoji(config.DefaultCardStyle)
}

// Composer builds localized e-card messages.
type Composer struct {
	T *Translator
}

// StyleFor picks the design for an entry. Close friends with a stored
// preference get their preferred design.
func (c *Composer) StyleFor(e store.Entry) string {
	if e.CloseFriend && e.PreferredCardStyle != "" {
		return e.PreferredCardStyle
	}
	return config.DefaultCardStyle
}

// Message renders the full e-card text for a recipient. The personal note
// is optional and inserted between the wish and the closing.
func (c *Composer) Message(name, style, personal string) string {
	emoji := StyleEmoji(style)

	var b strings.Builder
	b.WriteString(emoji)
	b.WriteString(" ")
	b.WriteString(c.T.MsgData(config.TKeyGreetHeader, map[string]interface{}{"Name": name}))
	b.WriteString(" ")
	b.WriteString(emoji)
	b.WriteString("\n\n")
	b.WriteString(emoji)
	b.WriteString(" ")
	b.WriteString(c.T.Msg(config.TKeyGreetWish))
	b.WriteString(" ")
	b.WriteString(emoji)

	if personal != "" {
		b.WriteString("\n\n")
		b.WriteString(personal)
	}

	b.WriteString("\n\n")
	b.WriteString(c.T.Msg(config.TKeyGreetClosing))
	return b.String()
}

// MessageFor composes the e-card for an entry using its resolved style and
// any stored notes as the personal line.
func (c *Composer) MessageFor(e store.Entry) string {
	return c.Message(e.Name, c.StyleFor(e), e.Notes)
}
