// Package parse bridges ACON documents to other representations: plain Go
// values, JSON, YAML and back.
//
// Tables are emitted with their keys in sorted order so every output is
// deterministic. Values coming in from JSON or YAML are turned into strings
// and whitespace normalised, since strings are the only ACON scalar.
package parse
