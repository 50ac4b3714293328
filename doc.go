/*
Package htmlisp parses HTMLisp, a small Lisp-like notation for markup, and
renders it as HTML.

A document is a single node. A tag is written as a parenthesized call whose
head is the tag name, followed by keyword attributes and then children:

	(div :style "background: white"
	  (h1 "hello")
	  (p "world"))

Names are ASCII letters and digits. Attribute values and text are double
quoted; \" inside a string stands for a quote and no other escapes exist.
An attribute directly followed by another one has an empty value:

	(input :disabled :type "checkbox")

Parse returns the tree, and Compact or Pretty turn it into HTML:

	node, err := htmlisp.Parse(src)
	if err != nil {
		// err is a *htmlisp.ParseError; use errors.Is with the Err* sentinels
	}
	fmt.Println(htmlisp.Compact(node))
	// <div style="background: white"><h1>hello</h1><p>world</p></div>

Compact output contains no whitespace between elements. Pretty output puts
every child on its own line, indented with one tab per level. Neither
rendering escapes text or attribute values, and every tag gets an explicit
end tag, so (br) renders as <br></br>.

When a tag has more than one attribute the attributes are separated by two
spaces:

	<meta name="viewport"  content="width=device-width, initial-scale=1"></meta>

This matches the output of earlier HTMLisp releases and is kept on purpose.
*/
package htmlisp
