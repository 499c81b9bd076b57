package mctext

import "strings"

// Plain flattens a literal text tree to its transitive plain string content.
// Only literal nodes contribute; any other variant yields nothing.
func Plain(t Text) string {
	lit, ok := t.(*LiteralText)
	if !ok {
		return ""
	}

	if !lit.HasChildren() {
		return lit.Content()
	}

	var sb strings.Builder
	sb.WriteString(lit.Content())
	for _, child := range lit.children {
		sb.WriteString(Plain(child))
	}
	return sb.String()
}
