package model

import (
	"strings"

	"github.com/teranos/idlgen/errors"
)

// Kind is the closed set of declarable type kinds.
type Kind int

const (
	KindUnknown Kind = iota
	KindStruct
	KindUnion
	KindTypedef
	KindEnum
	KindMap
)

var kindNames = map[Kind]string{
	KindStruct:  "struct",
	KindUnion:   "union",
	KindTypedef: "typedef",
	KindEnum:    "enum",
	KindMap:     "map",
}

// Kinds lists every valid kind in declaration-statistics order
var Kinds = []Kind{KindStruct, KindUnion, KindTypedef, KindEnum, KindMap}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k is one of the declarable kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a stereotype onto a Kind.
// Matching is case-insensitive and accepts the "idl" prefixed stereotypes
// used by modeling tools (idlStruct, idlUnion, ...).
func ParseKind(stereotype string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(stereotype))
	s = strings.TrimPrefix(s, "idl")
	s = strings.TrimPrefix(s, "_")
	for k, name := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return KindUnknown, errors.NewInvalidInputError("unknown type kind %q", stereotype)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Newf("cannot marshal invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
