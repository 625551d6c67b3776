package render

import "testing"

func TestWrapHTMLTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"bare tag",
			"use <div> for layout",
			"use `<div>` for layout",
		},
		{
			"closing and self-closing",
			"pair </span> with <br/>",
			"pair `</span>` with `<br/>`",
		},
		{
			"attributes",
			`try <a href="https://x.y" target=_blank> here`,
			"try `" + `<a href="https://x.y" target=_blank>` + "` here",
		},
		{
			"fenced region untouched",
			"before\n```\n<div class=\"x\">\n```\nafter <p>",
			"before\n```\n<div class=\"x\">\n```\nafter `<p>`",
		},
		{
			"inline span untouched",
			"already `<code><div></code>` quoted, but <span> is not",
			"already `<code><div></code>` quoted, but `<span>` is not",
		},
		{
			"no markup",
			"just text with 1 < 2 math",
			"just text with 1 < 2 math",
		},
		{
			"empty",
			"",
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapHTMLTags(tc.in)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWrapHTMLTagsIdempotent(t *testing.T) {
	in := "outside <b>bold</b> and ```\n<pre>\n``` done"
	once := WrapHTMLTags(in)
	twice := WrapHTMLTags(once)
	if once != twice {
		t.Fatalf("second pass changed output:\nonce:  %q\ntwice: %q", once, twice)
	}
}
