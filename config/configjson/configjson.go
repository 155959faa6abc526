// Package configjson dumps a Document's tree to JSON, for tooling that
// wants to inspect a configuration without linking against the text
// grammar (cmd/libconfigfmt's "dump" subcommand).
//
// Grounded on java/parser/json.go and format/ast_json.go: a private
// mirror struct per node shape with a MarshalJSON method, rather than
// exposing Setting's internal fields directly.
package configjson

import (
	"encoding/json"

	"github.com/SysMan-One/libconfig/config"
)

// node mirrors one Setting for JSON output. Value holds a scalar's Go
// value (or nil for containers); Children holds ARRAY/LIST/GROUP members.
type node struct {
	Name     string      `json:"name,omitempty"`
	Kind     string      `json:"kind"`
	Value    any         `json:"value,omitempty"`
	Children []node      `json:"children,omitempty"`
	File     string      `json:"file,omitempty"`
	Line     int         `json:"line,omitempty"`
}

// Marshal renders doc's tree as indented JSON.
func Marshal(doc *config.Document) ([]byte, error) {
	return json.MarshalIndent(toNode(doc.Root()), "", "  ")
}

func toNode(s *config.Setting) node {
	n := node{
		Name: s.Name(),
		Kind: s.Kind().String(),
		File: s.File(),
		Line: s.Line(),
	}
	switch s.Kind() {
	case config.KindInt:
		v, _ := s.Int()
		n.Value = v
	case config.KindInt64:
		v, _ := s.Int64()
		n.Value = v
	case config.KindFloat:
		v, _ := s.Float()
		n.Value = v
	case config.KindBool:
		v, _ := s.Bool()
		n.Value = v
	case config.KindString:
		v, _ := s.String()
		n.Value = v
	case config.KindArray, config.KindList, config.KindGroup:
		n.Children = make([]node, s.Length())
		for i := 0; i < s.Length(); i++ {
			n.Children[i] = toNode(s.GetElem(i))
		}
	}
	return n
}
