package main

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// normWS collapses all runs of whitespace to single spaces and trims the ends.
func normWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// flattenText concatenates every text node in the subtree rooted at el,
// in document order, with markup removed.
func flattenText(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var sb strings.Builder
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			sb.WriteString(node.Data)
		case *etree.Element:
			sb.WriteString(flattenText(node))
		}
	}
	return sb.String()
}

// localName reports whether el's tag matches name, ignoring any namespace
// prefix. DocBook refpages come in namespaced and bare variants; etree keeps
// prefixes as written, so matching on the local tag accepts both.
func localName(el *etree.Element, name string) bool {
	return el.Tag == name
}

// findAll returns every descendant of el (not el itself) whose local tag
// matches name, in document order.
func findAll(el *etree.Element, name string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if localName(child, name) {
			out = append(out, child)
		}
		out = append(out, findAll(child, name)...)
	}
	return out
}

// findFirst returns the first descendant of el whose local tag matches name.
func findFirst(el *etree.Element, name string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, child := range el.ChildElements() {
		if localName(child, name) {
			return child
		}
		if found := findFirst(child, name); found != nil {
			return found
		}
	}
	return nil
}

// childElem returns the first direct child of el with the given local tag.
func childElem(el *etree.Element, name string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, child := range el.ChildElements() {
		if localName(child, name) {
			return child
		}
	}
	return nil
}

// childElems returns the direct children of el with the given local tag.
func childElems(el *etree.Element, name string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if localName(child, name) {
			out = append(out, child)
		}
	}
	return out
}

// childText returns the flattened, whitespace-normalized text of the first
// direct child of el with the given local tag.
func childText(el *etree.Element, name string) string {
	return normWS(flattenText(childElem(el, name)))
}

// stripWord removes ident from text as a whole-word match and normalizes the
// remaining whitespace. Used to turn a declaration like "const GLfloat *params"
// into its type text by deleting the identifier token.
func stripWord(text, ident string) string {
	if ident == "" {
		return normWS(text)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(ident) + `\b`)
	return normWS(re.ReplaceAllString(text, ""))
}

// stripCallConv removes vendor calling-convention qualifiers from a
// declaration fragment.
func stripCallConv(s string) string {
	s = strings.ReplaceAll(s, "GLAPIENTRY", "")
	s = strings.ReplaceAll(s, "APIENTRY", "")
	return normWS(s)
}

var (
	doctypeRE = regexp.MustCompile(`(?is)<!DOCTYPE[^>\[]*(\[[^\]]*\])?[^>]*>`)
	entityRE  = regexp.MustCompile(`&[A-Za-z][A-Za-z0-9._-]*;`)
)

// lenientRecover rewrites document text so a strict parse failure can be
// retried: doctype declarations are dropped and entity references other than
// the five predefined XML entities are stripped. Pure text transformation,
// no parsing involved.
func lenientRecover(s string) string {
	s = doctypeRE.ReplaceAllString(s, "")
	s = entityRE.ReplaceAllStringFunc(s, func(ref string) string {
		switch ref {
		case "&lt;", "&gt;", "&amp;", "&quot;", "&apos;":
			return ref
		}
		return ""
	})
	return s
}
