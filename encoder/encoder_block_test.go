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

var tcsBlock = []mdTestCase{
	{
		descr: "Empty Markdown should produce near nothing",
		md:    "",
		expect: expectMap{
			encoderJSON:   `[]`,
			encoderNative: `()`,
			encoderText:   "",
			encoderTree:   "",
		},
	},
	{
		descr: "Simple text: Hello, world",
		md:    "Hello, world",
		expect: expectMap{
			encoderJSON:   `[{"t":"Paragraph","c":[{"t":"Text","s":"Hello, world"}]}]`,
			encoderNative: `((PARA (TEXT "Hello, world")))`,
			encoderText:   "Hello, world",
			encoderTree:   "Paragraph\n  Text \"Hello, world\"\n",
		},
	},
	{
		descr: "Strong text",
		md:    "Hello **world**",
		expect: expectMap{
			encoderJSON:   `[{"t":"Paragraph","c":[{"t":"Text","s":"Hello "},{"t":"Strong","c":[{"t":"Text","s":"world"}]}]}]`,
			encoderNative: `((PARA (TEXT "Hello ") (STRONG (TEXT "world"))))`,
			encoderText:   "Hello world",
			encoderTree:   "Paragraph\n  Text \"Hello \"\n  Strong\n    Text \"world\"\n",
		},
	},
	{
		descr: "Simple Heading",
		md:    "## Hello World",
		expect: expectMap{
			encoderJSON:   `[{"t":"Heading","level":2,"slug":"hello-world","c":[{"t":"Text","s":"Hello World"}]}]`,
			encoderNative: `((HEADING 2 (TEXT "Hello World")))`,
			encoderText:   "Hello World",
			encoderTree:   "Heading 2\n  Text \"Hello World\"\n",
		},
	},
	{
		descr: "Fenced code block",
		md:    "```go\nfmt\n```",
		expect: expectMap{
			encoderJSON:   `[{"t":"CodeBlock","info":"go","s":"fmt\n"}]`,
			encoderNative: `((CODE-BLOCK "go" "fmt\n"))`,
			encoderText:   "fmt",
			encoderTree:   "CodeBlock go \"fmt\\n\"\n",
		},
	},
	{
		descr: "Indented code block has no info",
		md:    "    code\n",
		expect: expectMap{
			encoderJSON:   `[{"t":"CodeBlock","s":"code\n"}]`,
			encoderNative: `((CODE-BLOCK () "code\n"))`,
			encoderText:   "code",
		},
	},
	{
		descr: "HTML block",
		md:    "<p>hi</p>\n",
		expect: expectMap{
			encoderJSON:   `[{"t":"HTMLBlock","s":"<p>hi</p>\n"}]`,
			encoderNative: `((HTML-BLOCK "<p>hi</p>\n"))`,
			encoderText:   "<p>hi</p>",
		},
	},
	{
		descr: "Task list with an item that has no checkbox",
		md:    "- [x] a\n- b",
		expect: expectMap{
			encoderJSON: `[{"t":"TaskList","tight":true,"c":[` +
				`{"t":"TaskItem","done":true,"source":"27a5f48e-5dc2-5451-a0bc-9f13aabcca3a","c":[{"t":"Paragraph","c":[{"t":"Text","s":"a"}]}]},` +
				`{"t":"TaskItem","done":false,"source":"0fae44fd-cbeb-5c33-b517-1e346eb93647","c":[{"t":"Paragraph","c":[{"t":"Text","s":"b"}]}]}]}]`,
			encoderNative: `((TASK-LIST TIGHT (TASK DONE (PARA (TEXT "a"))) (TASK OPEN (PARA (TEXT "b")))))`,
			encoderText:   "a\nb",
			encoderTree:   "TaskList tight\n  TaskItem [x]\n    Paragraph\n      Text \"a\"\n  TaskItem [ ]\n    Paragraph\n      Text \"b\"\n",
		},
	},
	{
		descr: "Bulleted list",
		md:    "* a\n* b",
		expect: expectMap{
			encoderJSON:   `[{"t":"BulletedList","tight":true,"c":[{"t":"Item","c":[{"t":"Paragraph","c":[{"t":"Text","s":"a"}]}]},{"t":"Item","c":[{"t":"Paragraph","c":[{"t":"Text","s":"b"}]}]}]}]`,
			encoderNative: `((BULLET-LIST TIGHT (ITEM (PARA (TEXT "a"))) (ITEM (PARA (TEXT "b")))))`,
			encoderText:   "a\nb",
			encoderTree:   "BulletedList tight\n  Item\n    Paragraph\n      Text \"a\"\n  Item\n    Paragraph\n      Text \"b\"\n",
		},
	},
	{
		descr: "Numbered list keeps its start",
		md:    "3. foo\n4. bar",
		expect: expectMap{
			encoderJSON:   `[{"t":"NumberedList","tight":true,"start":3,"c":[{"t":"Item","c":[{"t":"Paragraph","c":[{"t":"Text","s":"foo"}]}]},{"t":"Item","c":[{"t":"Paragraph","c":[{"t":"Text","s":"bar"}]}]}]}]`,
			encoderNative: `((NUMBERED-LIST TIGHT 3 (ITEM (PARA (TEXT "foo"))) (ITEM (PARA (TEXT "bar")))))`,
			encoderText:   "foo\nbar",
			encoderTree:   "NumberedList tight start=3\n  Item\n    Paragraph\n      Text \"foo\"\n  Item\n    Paragraph\n      Text \"bar\"\n",
		},
	},
	{
		descr: "Blockquote and thematic break",
		md:    "> quote\n\n---",
		expect: expectMap{
			encoderJSON:   `[{"t":"Blockquote","c":[{"t":"Paragraph","c":[{"t":"Text","s":"quote"}]}]},{"t":"ThematicBreak"}]`,
			encoderNative: `((QUOTE (PARA (TEXT "quote"))) (THEMATIC-BREAK))`,
			encoderText:   "quote",
			encoderTree:   "Blockquote\n  Paragraph\n    Text \"quote\"\nThematicBreak\n",
		},
	},
	{
		descr: "Table with alignments",
		md:    "| a | b |\n|:--|--:|\n| 1 | 2 |",
		expect: expectMap{
			encoderJSON:   `[{"t":"Table","align":["left","right"],"header":[[{"t":"Text","s":"a"}],[{"t":"Text","s":"b"}]],"rows":[[[{"t":"Text","s":"1"}],[{"t":"Text","s":"2"}]]]}]`,
			encoderNative: `((TABLE (ALIGN LEFT RIGHT) (HEADER (CELL (TEXT "a")) (CELL (TEXT "b"))) (ROW (CELL (TEXT "1")) (CELL (TEXT "2")))))`,
			encoderText:   "a b\n1 2",
			encoderTree:   "Table left right\n  Header\n    Cell\n      Text \"a\"\n    Cell\n      Text \"b\"\n  Row\n    Cell\n      Text \"1\"\n    Cell\n      Text \"2\"\n",
		},
	},
	{
		descr: "Two paragraphs",
		md:    "a\n\nb",
		expect: expectMap{
			encoderNative: `((PARA (TEXT "a")) (PARA (TEXT "b")))`,
			encoderText:   "a\nb",
			encoderTree:   "Paragraph\n  Text \"a\"\nParagraph\n  Text \"b\"\n",
		},
	},
}
