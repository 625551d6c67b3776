package render

import (
	"regexp"
	"strings"
)

var (
	fencedRegionRegexp = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRegexp   = regexp.MustCompile("`[^`\n]*`")
	// matches markup written with literal angle brackets: optional slash,
	// tag name, attribute clauses with quoted or bare values, optional
	// self-closing slash
	htmlTagRegexp = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9-]*(?:\s+[A-Za-z_:][-A-Za-z0-9_:.]*(?:\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'>]+))?)*\s*/?>`)
)

// WrapHTMLTags fences markup quoted in plain text in single backticks so
// downstream viewers do not mistake it for live HTML. Existing fenced code
// regions are carried through untouched, then existing inline code spans;
// only the residue is matched. Inverting that order would double-wrap
// content the author already marked as code.
func WrapHTMLTags(text string) string {
	return replaceOutside(text, fencedRegionRegexp, func(unfenced string) string {
		return replaceOutside(unfenced, inlineCodeRegexp, func(plain string) string {
			return htmlTagRegexp.ReplaceAllString(plain, "`$0`")
		})
	})
}

// replaceOutside applies fn to every stretch of text not matched by region,
// keeping the matched regions verbatim.
func replaceOutside(text string, region *regexp.Regexp, fn func(string) string) string {
	locs := region.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return fn(text)
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(fn(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(fn(text[last:]))
	return b.String()
}
