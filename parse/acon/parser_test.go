package acon

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func mustPath(root Node, path string) string {
	n, ok := Path(root, path)
	if !ok {
		return "<missing>"
	}
	return MustString(n)
}

func TestDuplicateKeys(t *testing.T) {
	convey.Convey("duplicate entry keys", t, func() {
		src := `
		key value1
		key2 value2
		key value3
		key2 value4
	`
		_, err := ParseString(src)
		convey.So(err, convey.ShouldResemble, &Error{Kind: DuplicateKey, Line: 4, Key: "key"})
		convey.So(errors.Is(err, ErrDuplicateKey), convey.ShouldBeTrue)
		convey.So(err.Error(), convey.ShouldEqual, `acon:4: duplicate key "key"`)
	})

	convey.Convey("a table name colliding with an entry", t, func() {
		src := `
		key value1
		key2 value2
		{ key
		}
		key2 value4
	`
		_, err := ParseString(src)
		convey.So(err, convey.ShouldResemble, &Error{Kind: DuplicateKey, Line: 5, Key: "key"})
	})

	convey.Convey("an array name colliding with an entry", t, func() {
		src := `
		key value1
		key2 value2
		[ key
		]
		key2 value4
	`
		_, err := ParseString(src)
		convey.So(err, convey.ShouldResemble, &Error{Kind: DuplicateKey, Line: 5, Key: "key"})
	})

	convey.Convey("duplicates are scoped to their own table", t, func() {
		src := `
		{ key
			{ key
				key value
				[
				]
				key value
			}
		}
	`
		_, err := ParseString(src)
		convey.So(err, convey.ShouldResemble, &Error{Kind: DuplicateKey, Line: 7, Key: "key"})
	})

	convey.Convey("comment lines are entries keyed #", t, func() {
		_, err := ParseString("# first\n# second")
		convey.So(err, convey.ShouldResemble, &Error{Kind: DuplicateKey, Line: 2, Key: "#"})

		root, err := ParseString("# only one\nk v")
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "#"), convey.ShouldEqual, "only one")
	})
}

func TestNestedMessages(t *testing.T) {
	convey.Convey("unnamed array of named tables", t, func() {
		src := `
		[
			{ message
				recipient me
				sender you
				[ content
					Hey what is this ACON thingy all about?
					I mean, we've got TOML, JSON, XML, and SGML.
				]
			}
			{ message
				sender me
				recipient you
				[ content
					ACON means Awk-Compatible Object Notation.
					We need tools that are    friendly for bash scripting.
				]
			}
		]
	`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)

		list := MustArray(root.Items[""])
		convey.So(list.Len(), convey.ShouldEqual, 2)
		second, ok := list.Get("1")
		convey.So(ok, convey.ShouldBeTrue)
		msg := MustTable(MustTable(second).Items["message"])
		convey.So(MustString(msg.Items["recipient"]), convey.ShouldEqual, "you")

		convey.So(mustPath(root, ".1.message.recipient"), convey.ShouldEqual, "you")
		convey.So(mustPath(root, ".0.message.content.1"), convey.ShouldEqual, "I mean, we've got TOML, JSON, XML, and SGML.")
		convey.So(mustPath(root, ".1.message.content.1"), convey.ShouldEqual, "We need tools that are friendly for bash scripting.")
	})

	convey.Convey("simple nested table", t, func() {
		root, err := ParseString("{ t\n k v\n }")
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "t.k"), convey.ShouldEqual, "v")
	})

	convey.Convey("unnamed table inside an array is not wrapped", t, func() {
		root, err := ParseString("[ a\n{\nk v\n}\n[\nx\n]\n]")
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "a.0.k"), convey.ShouldEqual, "v")
		convey.So(mustPath(root, "a.1.0"), convey.ShouldEqual, "x")
	})

	convey.Convey("named array inside an array is wrapped", t, func() {
		root, err := ParseString("[ a\n[ inner\nx\n]\n]")
		convey.So(err, convey.ShouldBeNil)
		wrapper := MustTable(MustArray(root.Items["a"]).Elems[0])
		convey.So(wrapper.Keys(), convey.ShouldResemble, []string{"inner"})
		convey.So(mustPath(root, "a.0.inner.0"), convey.ShouldEqual, "x")
	})
}

func TestEntries(t *testing.T) {
	convey.Convey("table values are whitespace normalised", t, func() {
		root, err := ParseString("  key \t a   b\t c  \nbare")
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "key"), convey.ShouldEqual, "a b c")
		convey.So(mustPath(root, "bare"), convey.ShouldEqual, "")
	})

	convey.Convey("array lines keep their first word", t, func() {
		root, err := ParseString("[ a\n   x   y z  \n#\n]")
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "a.0"), convey.ShouldEqual, "x y z")
		convey.So(mustPath(root, "a.1"), convey.ShouldEqual, "#")
	})

	convey.Convey("blank lines", t, func() {
		root, err := ParseString("\n\nk v\n\n[ a\n\n\n$")
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Keys(), convey.ShouldResemble, []string{"a", "k"})
		convey.So(mustPath(root, "a.0"), convey.ShouldEqual, "")
		convey.So(mustPath(root, "a.1"), convey.ShouldEqual, "")
		convey.So(MustArray(root.Items["a"]).Len(), convey.ShouldEqual, 2)
	})

	convey.Convey("escape codes are kept verbatim", t, func() {
		root, err := ParseString("a(46)b x(32)y")
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "a(46)b"), convey.ShouldEqual, "x(32)y")
	})

	convey.Convey("CRLF line endings", t, func() {
		root, err := ParseString("k v\r\n{ t\r\nx y\r\n}\r\n")
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "t.x"), convey.ShouldEqual, "y")
		convey.So(mustPath(root, "k"), convey.ShouldEqual, "v")
	})

	convey.Convey("empty input is an empty table", t, func() {
		root, err := ParseString("")
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Len(), convey.ShouldEqual, 0)
	})
}

func TestSuperDelimiter(t *testing.T) {
	convey.Convey("$ closes every nesting", t, func() {
		src := `
	{ table
		{ table
			{ table
				[ array
					{ table
						key value

	$ This word as the first word on a line closes all nestings

	[ reason
		I want to get rid of it all.
		If a program crashes whilst serializing then another
		program can append $ to the end of the stream.
	]
	`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "table.table.table.array.0.table.key"), convey.ShouldEqual, "value")
		convey.So(mustPath(root, "reason.2"), convey.ShouldEqual, "program can append $ to the end of the stream.")
	})

	convey.Convey("$ is equivalent to explicit closers", t, func() {
		closed, err := ParseString("{ a\n[ b\n{ c\nk v\n}\n]\n}")
		convey.So(err, convey.ShouldBeNil)
		dollar, err := ParseString("{ a\n[ b\n{ c\nk v\n$")
		convey.So(err, convey.ShouldBeNil)
		convey.So(Equal(closed, dollar), convey.ShouldBeTrue)
	})

	convey.Convey("blank lines before $ are array elements", t, func() {
		src := `
	[ array



	$
	`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		convey.So(mustPath(root, "array.2"), convey.ShouldEqual, "")
		convey.So(MustArray(root.Items["array"]).Len(), convey.ShouldEqual, 3)
	})

	convey.Convey("$ still detects duplicate names", t, func() {
		src := `
	{ table
		key value

	$
	{ table

	$
	`
		_, err := ParseString(src)
		convey.So(err, convey.ShouldResemble, &Error{Kind: DuplicateKey, Line: 8, Key: "table"})
	})

	convey.Convey("$ at the root is a no-op", t, func() {
		root, err := ParseString("k v\n$\nj w")
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Keys(), convey.ShouldResemble, []string{"j", "k"})
	})
}

func TestStructuralErrors(t *testing.T) {
	convey.Convey("unterminated array", t, func() {
		_, err := ParseString("[ a\n v")
		convey.So(err, convey.ShouldResemble, &Error{Kind: UnterminatedNesting, Want: KindArray, Opened: 1})
		convey.So(errors.Is(err, ErrUnterminatedNesting), convey.ShouldBeTrue)
		convey.So(err.Error(), convey.ShouldEqual, "acon: unterminated array opened on line 1")
	})

	convey.Convey("unterminated table", t, func() {
		_, err := ParseString("k v\n{ t\n{ u\n}\n v")
		convey.So(err, convey.ShouldResemble, &Error{Kind: UnterminatedNesting, Want: KindTable, Opened: 2})
	})

	convey.Convey("wrong closing delimiter", t, func() {
		_, err := ParseString("[ a\n}")
		convey.So(err, convey.ShouldResemble, &Error{Kind: WrongClosingDelimiterKind, Line: 2, Want: KindArray})
		convey.So(err.Error(), convey.ShouldEqual, `acon:2: wrong closing delimiter, expected "]"`)

		_, err = ParseString("{ t\nk v\n]")
		convey.So(err, convey.ShouldResemble, &Error{Kind: WrongClosingDelimiterKind, Line: 3, Want: KindTable})
		convey.So(errors.Is(err, ErrWrongClosingDelimiterKind), convey.ShouldBeTrue)
	})

	convey.Convey("excessive closing delimiter", t, func() {
		_, err := ParseString("k v\n}")
		convey.So(err, convey.ShouldResemble, &Error{Kind: ExcessiveClosingDelimiter, Line: 2})

		_, err = ParseString("[ a\n]\n] trailing")
		convey.So(err, convey.ShouldResemble, &Error{Kind: ExcessiveClosingDelimiter, Line: 3})
		convey.So(errors.Is(err, ErrExcessiveClosingDelimiter), convey.ShouldBeTrue)

		_, err = ParseString("k v\n]")
		convey.So(err, convey.ShouldResemble, &Error{Kind: ExcessiveClosingDelimiter, Line: 2})
		convey.So(err.Error(), convey.ShouldEqual, "acon:2: excessive closing delimiter")
	})

	convey.Convey("reasons mention the line", t, func() {
		err := &Error{Kind: DuplicateKey, Line: 3, Key: "k"}
		convey.So(err.Reason(), convey.ShouldEqual, `On line 3, the key "k" is already present in the table.`)

		err = &Error{Kind: ExcessiveClosingDelimiter}
		convey.So(err.Reason(), convey.ShouldStartWith, "There's a closing delimiter")

		err = &Error{Kind: UnterminatedNesting, Want: KindTable, Opened: 9}
		convey.So(err.Reason(), convey.ShouldContainSubstring, "opened on line 9")
	})

	convey.Convey("overlong lines fail with the reader error", t, func() {
		_, err := ParseString("k " + strings.Repeat("x", MaxLineSize+1))
		convey.So(errors.Is(err, bufio.ErrTooLong), convey.ShouldBeTrue)
	})

	convey.Convey("reparsing yields the same error", t, func() {
		src := "[ a\n}"
		_, first := ParseString(src)
		_, second := ParseString(src)
		convey.So(first, convey.ShouldResemble, second)
	})
}
