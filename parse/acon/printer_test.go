package acon

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/smartystreets/goconvey/convey"
)

const messages = `
[
	{ message
		recipient me
		sender you
		[ content
			Hey what is this ACON thingy all about?

			I mean, we've got TOML, JSON, XML, and SGML.
		]
	}
	{
		a b
		c d
	}
	[
		nested
		{ deep
		}
	]
]
{ server
	port 8080
	{
	}
	[ hosts
	]
}
# not a comment
`

func TestMarshal(t *testing.T) {
	convey.Convey("canonical layout", t, func() {
		root, err := ParseString("name acon\n{ server\nport 8080\n[ hosts\nalpha\n\nbeta   gamma\n]\n}")
		convey.So(err, convey.ShouldBeNil)

		out, err := Marshal(root)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(out), convey.ShouldEqual,
			"name acon\n{ server\n\t[ hosts\n\t\talpha\n\n\t\tbeta gamma\n\t]\n\tport 8080\n}\n")
	})

	convey.Convey("custom indent and empty values", t, func() {
		root := NewTable()
		root.Set("flag", NewString(""))
		inner := NewTable()
		inner.Set("k", NewString("v"))
		root.Set("t", inner)

		var buf bytes.Buffer
		err := (&Printer{Indent: "  "}).Fprint(&buf, root)
		convey.So(err, convey.ShouldBeNil)
		convey.So(buf.String(), convey.ShouldEqual, "flag\n{ t\n  k v\n}\n")
	})

	convey.Convey("only tables are documents", t, func() {
		_, err := Marshal(NewArray())
		convey.So(err, convey.ShouldEqual, ErrRootNotTable)
		_, err = Marshal(NewString("x"))
		convey.So(err, convey.ShouldEqual, ErrRootNotTable)
	})

	convey.Convey("unrepresentable trees are rejected", t, func() {
		root := NewTable()
		root.Set("", NewString("x"))
		_, err := Marshal(root)
		convey.So(err, convey.ShouldNotBeNil)

		root = NewTable()
		root.Set("two words", NewTable())
		_, err = Marshal(root)
		convey.So(err, convey.ShouldNotBeNil)

		root = NewTable()
		root.Set("a", NewArray(NewString("{ x")))
		_, err = Marshal(root)
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestRoundTrip(t *testing.T) {
	convey.Convey("print then parse gives the same tree", t, func() {
		for _, src := range []string{
			messages,
			"",
			"k v",
			"[ a\n\n\n$",
			"{ a\n{ b\n{ c\n[ d\n{ e\nk v\n$",
			"[\n[\n[\n]\n]\n]",
		} {
			want, err := ParseString(src)
			convey.So(err, convey.ShouldBeNil)

			out, err := Marshal(want)
			convey.So(err, convey.ShouldBeNil)

			got, err := ParseBytes(out)
			convey.So(err, convey.ShouldBeNil)
			convey.So(cmp.Diff(want, got), convey.ShouldBeEmpty)

			again, err := Marshal(got)
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(again), convey.ShouldEqual, string(out))
		}
	})
}
