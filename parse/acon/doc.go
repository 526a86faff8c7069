// Package acon parses and prints ACON, the Awk-Compatible Object Notation.
//
// ACON is line oriented. Every line is split into whitespace separated words
// and only the first word decides what the line means. "{" and "[" open a
// table or an array named by the second word, "}" and "]" close them, and
// "$" closes every open block at once. Any other line is an entry: in a
// table the first word is the key and the rest is the value, in an array the
// whole line is one element.
//
//	name acon
//	{ server
//		port 8080
//	}
//	[ hosts
//		alpha
//		beta gamma
//	]
//
// The value kinds are strings, arrays and tables. Tables iterate in key
// order and reject duplicate keys. A blank line inside an array is an empty
// string element; inside a table it is ignored. There is no comment syntax:
// a line starting with # is an ordinary entry keyed "#".
//
// Escape codes are stored verbatim; the parser does not unescape keys or
// values.
package acon
