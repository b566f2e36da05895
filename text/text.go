package text

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LegacyEscape is the section-sign escape character legacy clients expect
// before each formatting code.
const LegacyEscape = '§'

// Content is the payload of a full Text node: exactly one of Plain,
// Translate, or Keybind is set.
type Content struct {
	Plain     string
	Translate string
	With      []Text
	Keybind   string
}

func (c Content) plaintext() string {
	switch {
	case c.Translate != "":
		return c.Translate
	case c.Keybind != "":
		return c.Keybind
	default:
		return c.Plain
	}
}

func (c Content) MarshalJSON() ([]byte, error) {
	switch {
	case c.Translate != "":
		m := map[string]interface{}{"translate": c.Translate}
		if len(c.With) > 0 {
			m["with"] = c.With
		}
		return json.Marshal(m)
	case c.Keybind != "":
		return json.Marshal(map[string]interface{}{"keybind": c.Keybind})
	default:
		return json.Marshal(map[string]interface{}{"text": c.Plain})
	}
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text      *string `json:"text"`
		Translate *string `json:"translate"`
		With      []Text  `json:"with"`
		Keybind   *string `json:"keybind"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Translate != nil:
		c.Translate = *raw.Translate
		c.With = raw.With
	case raw.Keybind != nil:
		c.Keybind = *raw.Keybind
	case raw.Text != nil:
		c.Plain = *raw.Text
	}
	return nil
}

// Formatting holds the optional display attributes a full Text node may
// carry. A nil pointer means "unset", distinct from explicitly false.
type Formatting struct {
	Color         *Color
	Font          *Font
	Bolded        *bool
	Italicized    *bool
	Underlined    *bool
	StruckThrough *bool
	Obfuscated    *bool
}

func (f Formatting) isZero() bool {
	return f.Color == nil && f.Font == nil && f.Bolded == nil &&
		f.Italicized == nil && f.Underlined == nil &&
		f.StruckThrough == nil && f.Obfuscated == nil
}

type formattingJSON struct {
	Color         *Color `json:"color,omitempty"`
	Font          *Font  `json:"font,omitempty"`
	Bolded        *bool  `json:"bold,omitempty"`
	Italicized    *bool  `json:"italic,omitempty"`
	Underlined    *bool  `json:"underlined,omitempty"`
	StruckThrough *bool  `json:"strikethrough,omitempty"`
	Obfuscated    *bool  `json:"obfuscated,omitempty"`
}

// Text is the recursive sum type used for the status MOTD and disconnect
// reasons: a plain string, a boolean, a number, a sequential list of other
// Text values, or a full node with content, children, and formatting.
type Text struct {
	str        *string
	boolean    *bool
	number     *float64
	sequential []Text
	full       bool
	content    Content
	children   []Text
	formatting Formatting
}

func Plain(s string) Text           { return Text{str: &s} }
func Boolean(b bool) Text           { return Text{boolean: &b} }
func Number(n float64) Text         { return Text{number: &n} }
func Sequential(items ...Text) Text { return Text{sequential: items} }

func FullText(content Content) Text {
	return Text{full: true, content: content}
}

func Translated(key string, args ...Text) Text {
	return FullText(Content{Translate: key, With: args})
}

func Keybind(key string) Text {
	return FullText(Content{Keybind: key})
}

func (t Text) isFull() bool { return t.full }

// asFull lifts any node to a full node, as setting a formatting attribute
// on a non-full node does.
func (t Text) asFull() Text {
	if t.full {
		return t
	}
	return Text{full: true, content: Content{Plain: t.Plaintext()}}
}

func (t Text) WithColor(c Color) Text {
	full := t.asFull()
	full.formatting.Color = &c
	return full
}

func (t Text) WithFont(f Font) Text {
	full := t.asFull()
	full.formatting.Font = &f
	return full
}

func (t Text) WithBolded(v bool) Text {
	full := t.asFull()
	full.formatting.Bolded = &v
	return full
}

func (t Text) WithItalicized(v bool) Text {
	full := t.asFull()
	full.formatting.Italicized = &v
	return full
}

func (t Text) WithUnderlined(v bool) Text {
	full := t.asFull()
	full.formatting.Underlined = &v
	return full
}

func (t Text) WithStruckThrough(v bool) Text {
	full := t.asFull()
	full.formatting.StruckThrough = &v
	return full
}

func (t Text) WithObfuscated(v bool) Text {
	full := t.asFull()
	full.formatting.Obfuscated = &v
	return full
}

func (t Text) WithChildren(children ...Text) Text {
	full := t.asFull()
	full.children = append(full.children, children...)
	return full
}

// PushSequential appends other to t, turning t into a Sequential list if it
// isn't one already. A non-sequential t becomes ["", t, other].
func (t Text) PushSequential(other Text) Text {
	if t.sequential != nil {
		return Text{sequential: append(append([]Text{}, t.sequential...), other)}
	}
	return Text{sequential: []Text{Plain(""), t, other}}
}

// Plaintext renders the content concatenation with no formatting escapes.
func (t Text) Plaintext() string {
	var b strings.Builder
	t.writePlaintext(&b)
	return b.String()
}

func (t Text) writePlaintext(b *strings.Builder) {
	switch {
	case t.str != nil:
		b.WriteString(*t.str)
	case t.boolean != nil:
		b.WriteString(strconv.FormatBool(*t.boolean))
	case t.number != nil:
		b.WriteString(strconv.FormatFloat(*t.number, 'g', -1, 64))
	case t.sequential != nil:
		for _, item := range t.sequential {
			item.writePlaintext(b)
		}
	case t.full:
		b.WriteString(t.content.plaintext())
		for _, child := range t.children {
			child.writePlaintext(b)
		}
	}
}

// Legacy renders the section-sign-escaped string legacy (pre-netty) clients
// expect: each full node emits its Some(true) flags and resolved color as
// escapes before its own content.
func (t Text) Legacy() string {
	var b strings.Builder
	t.writeLegacy(&b)
	return b.String()
}

func (t Text) writeLegacy(b *strings.Builder) {
	switch {
	case t.str != nil:
		b.WriteString(*t.str)
	case t.boolean != nil:
		b.WriteString(strconv.FormatBool(*t.boolean))
	case t.number != nil:
		b.WriteString(strconv.FormatFloat(*t.number, 'g', -1, 64))
	case t.sequential != nil:
		for _, item := range t.sequential {
			item.writeLegacy(b)
		}
	case t.full:
		if t.formatting.Color != nil {
			b.WriteRune(LegacyEscape)
			b.WriteByte(t.formatting.Color.nearestNamed().LegacyCode())
		}
		writeFlag := func(v *bool, code byte) {
			if v != nil && *v {
				b.WriteRune(LegacyEscape)
				b.WriteByte(code)
			}
		}
		writeFlag(t.formatting.Obfuscated, 'k')
		writeFlag(t.formatting.Bolded, 'l')
		writeFlag(t.formatting.StruckThrough, 'm')
		writeFlag(t.formatting.Underlined, 'n')
		writeFlag(t.formatting.Italicized, 'o')
		b.WriteString(t.content.plaintext())
		for _, child := range t.children {
			child.writeLegacy(b)
		}
	}
}

func (t Text) MarshalJSON() ([]byte, error) {
	switch {
	case t.str != nil:
		return json.Marshal(*t.str)
	case t.boolean != nil:
		return json.Marshal(*t.boolean)
	case t.number != nil:
		return json.Marshal(*t.number)
	case t.sequential != nil:
		return json.Marshal(t.sequential)
	case t.full:
		contentJSON, err := t.content.MarshalJSON()
		if err != nil {
			return nil, err
		}
		merged := map[string]interface{}{}
		if err := json.Unmarshal(contentJSON, &merged); err != nil {
			return nil, err
		}
		if len(t.children) > 0 {
			merged["extra"] = t.children
		}
		fj := formattingJSON{
			Color: t.formatting.Color, Font: t.formatting.Font,
			Bolded: t.formatting.Bolded, Italicized: t.formatting.Italicized,
			Underlined: t.formatting.Underlined, StruckThrough: t.formatting.StruckThrough,
			Obfuscated: t.formatting.Obfuscated,
		}
		fjData, err := json.Marshal(fj)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fjData, &merged); err != nil {
			return nil, err
		}
		return json.Marshal(merged)
	default:
		return json.Marshal("")
	}
}

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Plain(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Boolean(b)
		return nil
	case '[':
		var items []Text
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*t = Sequential(items...)
		return nil
	case '{':
		var content Content
		if err := json.Unmarshal(data, &content); err != nil {
			return err
		}
		var fj formattingJSON
		if err := json.Unmarshal(data, &fj); err != nil {
			return err
		}
		var extra struct {
			Extra []Text `json:"extra"`
		}
		if err := json.Unmarshal(data, &extra); err != nil {
			return err
		}
		*t = Text{
			full:    true,
			content: content,
			children: extra.Extra,
			formatting: Formatting{
				Color: fj.Color, Font: fj.Font, Bolded: fj.Bolded,
				Italicized: fj.Italicized, Underlined: fj.Underlined,
				StruckThrough: fj.StruckThrough, Obfuscated: fj.Obfuscated,
			},
		}
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = Number(n)
		return nil
	}
}
