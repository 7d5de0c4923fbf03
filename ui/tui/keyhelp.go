// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// FIX help.Model.ShortHelpView is bugged
// shortHelpView renders bindings on one line, ending in an ellipsis when
// they do not fit m.Width.
func shortHelpView(m help.Model, bindings []key.Binding) string {
	if len(bindings) == 0 {
		return ""
	}

	var b strings.Builder
	var usedWidth int
	var items []string
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}

		var sep string
		if len(items) > 0 {
			sep = separator
		}

		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	for i, item := range items {
		itemLen := lipgloss.Width(item)
		if i < len(items)-1 {
			// when not last
			if usedWidth+itemLen+tailLen <= m.Width {
				usedWidth += itemLen
				b.WriteString(item)
			} else {
				b.WriteString(tail)
				break
			}
		} else {
			// when last
			if usedWidth+itemLen <= m.Width {
				b.WriteString(item)
			} else if usedWidth+tailLen <= m.Width {
				b.WriteString(tail)
			}
		}
	}

	return b.String()
}
