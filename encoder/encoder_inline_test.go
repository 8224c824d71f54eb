//-----------------------------------------------------------------------------
// Copyright (c) 2021-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package encoder_test

var tcsInline = []mdTestCase{
	{
		descr: "Empty input",
		md:    "",
		expect: expectMap{
			encoderJSON:   `[]`,
			encoderNative: `()`,
			encoderText:   "",
			encoderTree:   "",
		},
	},
	{
		descr: "Emphasis and strikethrough",
		md:    "*a* ~~b~~",
		expect: expectMap{
			encoderJSON:   `[{"t":"Emphasis","c":[{"t":"Text","s":"a"}]},{"t":"Text","s":" "},{"t":"Strikethrough","c":[{"t":"Text","s":"b"}]}]`,
			encoderNative: `((EMPH (TEXT "a")) (TEXT " ") (DELETE (TEXT "b")))`,
			encoderText:   "a b",
			encoderTree:   "Emphasis\n  Text \"a\"\nText \" \"\nStrikethrough\n  Text \"b\"\n",
		},
	},
	{
		descr: "Soft break",
		md:    "a\nb",
		expect: expectMap{
			encoderJSON:   `[{"t":"Text","s":"a"},{"t":"SoftBreak"},{"t":"Text","s":"b"}]`,
			encoderNative: `((TEXT "a") (SOFT) (TEXT "b"))`,
			encoderText:   "a b",
			encoderTree:   "Text \"a\"\nSoftBreak\nText \"b\"\n",
		},
	},
	{
		descr: "Hard break",
		md:    "a\\\nb",
		expect: expectMap{
			encoderJSON:   `[{"t":"Text","s":"a"},{"t":"LineBreak"},{"t":"Text","s":"b"}]`,
			encoderNative: `((TEXT "a") (HARD) (TEXT "b"))`,
			encoderText:   "a\nb",
		},
	},
	{
		descr: "Code span and inline HTML",
		md:    "`x` <i>",
		expect: expectMap{
			encoderJSON:   `[{"t":"Code","s":"x"},{"t":"Text","s":" "},{"t":"HTML","s":"<i>"}]`,
			encoderNative: `((CODE "x") (TEXT " ") (HTML "<i>"))`,
			encoderText:   "x <i>",
			encoderTree:   "Code \"x\"\nText \" \"\nHTML \"<i>\"\n",
		},
	},
	{
		descr: "Quotes are escaped",
		md:    `say "hi"`,
		expect: expectMap{
			encoderJSON:   `[{"t":"Text","s":"say \"hi\""}]`,
			encoderNative: `((TEXT "say \"hi\""))`,
			encoderText:   `say "hi"`,
			encoderTree:   "Text \"say \\\"hi\\\"\"\n",
		},
	},
	{
		descr: "Link",
		md:    "[e](http://e)",
		expect: expectMap{
			encoderJSON:   `[{"t":"Link","dest":"http://e","c":[{"t":"Text","s":"e"}]}]`,
			encoderNative: `((LINK "http://e" (TEXT "e")))`,
			encoderText:   "e",
			encoderTree:   "Link \"http://e\"\n  Text \"e\"\n",
		},
	},
	{
		descr: "Image",
		md:    "![f](f.png)",
		expect: expectMap{
			encoderJSON:   `[{"t":"Image","src":"f.png","alt":"f","c":[{"t":"Text","s":"f"}]}]`,
			encoderNative: `((IMAGE "f.png" (TEXT "f")))`,
			encoderText:   "f",
		},
	},
	{
		descr: "Image wrapped in a link",
		md:    "[![alt](a.png)](http://x)",
		expect: expectMap{
			encoderJSON:   `[{"t":"Link","dest":"http://x","image":{"src":"a.png","alt":"alt","dest":"http://x"},"c":[{"t":"Image","src":"a.png","alt":"alt","c":[{"t":"Text","s":"alt"}]}]}]`,
			encoderNative: `((LINK "http://x" (IMAGE "a.png" (TEXT "alt"))))`,
			encoderText:   "alt",
			encoderTree:   "Link \"http://x\"\n  Image \"a.png\"\n    Text \"alt\"\n",
		},
	},
}
