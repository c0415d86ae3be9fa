package validation

import (
	"encoding/json"
	"html"
	"strings"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces markup-significant characters with HTML entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape, so stored text can be put back into a form
// without being escaped a second time on resubmit.
func Unescape(s string) string {
	return html.UnescapeString(s)
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// List coerces an optional multi-value field to a slice: nil becomes
// empty, and every element is trimmed. Blank elements are dropped.
func List(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = Trim(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// StringList is a multi-value field that also accepts a single JSON string
// in place of an array, mirroring how a form posts one checked box.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}
