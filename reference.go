package jsonschema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// ReferenceIndex indexes every subschema reachable from a root schema by
// absolute URI ($id/id anchor, optionally plus a named $anchor or
// $dynamicAnchor fragment) so
// that $ref can resolve without re-walking the tree on every lookup. JSON
// Pointer fragments resolve against the root directly and are not
// pre-indexed.
type ReferenceIndex struct {
	byID map[string]any
	root any
}

func buildReferenceIndex(root any) *ReferenceIndex {
	idx := &ReferenceIndex{byID: make(map[string]any), root: root}
	idx.walk(root, "")
	return idx
}

func (idx *ReferenceIndex) walk(node any, baseURI string) {
	obj, ok := node.(*Object)
	if !ok {
		return
	}
	idKey := "$id"
	if !obj.Has("$id") && obj.Has("id") {
		idKey = "id"
	}
	if idVal, has := obj.Get(idKey); has {
		if idStr, ok := idVal.(string); ok && idStr != "" {
			resolved := resolveURIRef(baseURI, idStr)
			idx.byID[resolved] = node
			baseURI = resolved
		}
	}
	for _, anchorKey := range []string{"$anchor", "$dynamicAnchor"} {
		if anchorVal, has := obj.Get(anchorKey); has {
			if anchorStr, ok := anchorVal.(string); ok && anchorStr != "" {
				idx.byID[baseURI+"#"+anchorStr] = node
			}
		}
	}
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		idx.walkValue(v, baseURI)
	}
}

func (idx *ReferenceIndex) walkValue(v any, baseURI string) {
	switch t := v.(type) {
	case *Object:
		idx.walk(t, baseURI)
	case []any:
		for _, e := range t {
			idx.walkValue(e, baseURI)
		}
	}
}

// resolve looks up a $ref string against the local document only: a bare
// "#" or empty string is the root, "#/..." is a JSON Pointer against the
// root, "#name" is an anchor, and anything carrying a scheme+authority not
// already indexed is reported as an unsupported remote reference.
func (idx *ReferenceIndex) resolve(ref string) (any, error) {
	if ref == "" || ref == "#" {
		return idx.root, nil
	}
	if strings.HasPrefix(ref, "#/") {
		return resolvePointer(idx.root, ref[1:])
	}
	if strings.HasPrefix(ref, "#") {
		anchor := ref[1:]
		if n, ok := idx.byID["#"+anchor]; ok {
			return n, nil
		}
		if n, ok := idx.byID[anchor]; ok {
			return n, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, ref)
	}

	base, frag := splitRef(ref)
	if node, ok := idx.byID[base]; ok {
		if frag == "" {
			return node, nil
		}
		if strings.HasPrefix(frag, "/") {
			return resolvePointer(idx.root, frag)
		}
		if n, ok := idx.byID[base+"#"+frag]; ok {
			return n, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, ref)
	}
	if isAbsoluteURI(base) {
		return nil, fmt.Errorf("%w: %s", ErrRemoteReferenceUnsupported, ref)
	}
	return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, ref)
}

// resolvePointer walks a JSON Pointer against root, using
// kaptinlin/jsonpointer for the ~0/~1 escape handling the way the teacher's
// own $ref resolution does.
func resolvePointer(root any, pointer string) (any, error) {
	segments, err := jsonpointer.Parse(pointer)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, pointer)
	}
	node := root
	for _, seg := range segments {
		switch n := node.(type) {
		case *Object:
			v, exists := n.Get(seg)
			if !exists {
				return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, pointer)
			}
			node = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(n) {
				return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, pointer)
			}
			node = n[i]
		default:
			return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, pointer)
		}
	}
	return node, nil
}

// validateRefSyntax walks schema checking every $ref string value at least
// parses as a URI reference, so construction fails fast on structurally
// malformed references rather than at validation time.
func validateRefSyntax(schema any) error {
	obj, ok := schema.(*Object)
	if !ok {
		return nil
	}
	if refVal, has := obj.Get("$ref"); has {
		if refStr, ok := refVal.(string); ok {
			if _, _, err := parseRefURI(refStr); err != nil {
				return fmt.Errorf("%w: %s", ErrMalformedRefURI, refStr)
			}
		}
	}
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		if err := validateRefSyntaxValue(v); err != nil {
			return err
		}
	}
	return nil
}

func validateRefSyntaxValue(v any) error {
	switch t := v.(type) {
	case *Object:
		return validateRefSyntax(t)
	case []any:
		for _, e := range t {
			if err := validateRefSyntaxValue(e); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseRefURI(ref string) (uri string, fragment string, err error) {
	uri, fragment = splitRef(ref)
	// A bare JSON Pointer fragment or anchor name never carries characters
	// that would make net/url reject it; only the URI part is worth
	// checking, and only when non-empty.
	if uri == "" {
		return uri, fragment, nil
	}
	if strings.ContainsAny(uri, " \t\n<>\"") {
		return "", "", ErrMalformedRefURI
	}
	return uri, fragment, nil
}
