//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

import "strings"

// PlainText flattens a sequence of inlines into its textual content.
//
// A soft break becomes a space, a hard line break a newline. Code and raw
// HTML contribute their content verbatim. Link destinations and image
// sources are never part of the result.
func PlainText(is InlineSlice) string {
	var sb strings.Builder
	writePlainText(&sb, is)
	return sb.String()
}

func writePlainText(sb *strings.Builder, is InlineSlice) {
	for _, in := range is {
		switch n := in.(type) {
		case *Text:
			sb.WriteString(n.Text)
		case *SoftBreak:
			sb.WriteByte(' ')
		case *LineBreak:
			sb.WriteByte('\n')
		case *Code:
			sb.WriteString(n.Text)
		case *HTML:
			sb.WriteString(n.Raw)
		case *Emphasis:
			writePlainText(sb, n.Inlines)
		case *Strong:
			writePlainText(sb, n.Inlines)
		case *Strikethrough:
			writePlainText(sb, n.Inlines)
		case *Link:
			writePlainText(sb, n.Inlines)
		case *Image:
			writePlainText(sb, n.Inlines)
		}
	}
}
