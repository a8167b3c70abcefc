package main

import (
	"fmt"
	"strings"
)

// refpageURL builds the public reference-page link for a function.
func refpageURL(collectionTag, fn string) string {
	return fmt.Sprintf("https://registry.khronos.org/OpenGL-Refpages/%s/html/%s.xhtml", collectionTag, fn)
}

// sigLookup is one way of obtaining a signature for a function. Strategies
// are tried lazily, in order; the first hit wins. Keeping the fallback chain
// as data makes its order auditable.
type sigLookup struct {
	source string
	fetch  func() (string, []SigParam, bool)
}

func signatureLookups(name, canon string, reg *Registry, refs *RefPages) []sigLookup {
	lookups := []sigLookup{
		{source: "refpage", fetch: func() (string, []SigParam, bool) {
			return refs.CSignature(name)
		}},
	}
	if canon != name {
		lookups = append(lookups, sigLookup{source: "refpage-canonical", fetch: func() (string, []SigParam, bool) {
			return refs.CSignature(canon)
		}})
	}
	lookups = append(lookups, sigLookup{source: "registry", fetch: func() (string, []SigParam, bool) {
		ret, params, _, ok := reg.SignatureCanonical(name)
		if !ok {
			return "", nil, false
		}
		sig := make([]SigParam, 0, len(params))
		for _, p := range params {
			sig = append(sig, SigParam{Type: p.Type, Name: p.Name})
		}
		return ret, sig, ok
	}})
	return lookups
}

// buildDocblock merges registry and refpage knowledge about one function
// into a Doxygen comment block, returned as lines without terminators.
// The second return is false when neither source has signature information,
// in which case nothing should be emitted.
func buildDocblock(name string, reg *Registry, refs *RefPages) ([]string, bool) {
	canon := reg.ResolveAlias(name)

	brief, ok := refs.Brief(name)
	if !ok && canon != name {
		brief, _ = refs.Brief(canon)
	}
	pdesc := refs.ParamDescriptions(name)
	if len(pdesc) == 0 && canon != name {
		pdesc = refs.ParamDescriptions(canon)
	}

	var ret string
	var params []SigParam
	found := false
	for _, lookup := range signatureLookups(name, canon, reg, refs) {
		if r, p, ok := lookup.fetch(); ok {
			ret, params = r, p
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	// Registry metadata (group/len tags) rides along even when the
	// signature itself came from a refpage.
	regParams := make(map[string]Param)
	if _, rp, _, ok := reg.SignatureCanonical(name); ok {
		for _, p := range rp {
			regParams[p.Name] = p
		}
	}

	lines := []string{"/**"}
	if brief != "" {
		if !strings.HasSuffix(brief, ".") {
			brief += "."
		}
		lines = append(lines, " * \\brief "+brief)
	}
	seen := make(map[string]bool)
	for _, p := range params {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		lines = append(lines, paramLine(p, pdesc[p.Name], regParams[p.Name]))
	}
	if ret != "" && strings.TrimSpace(ret) != "void" {
		lines = append(lines, fmt.Sprintf(" * \\return (%s)", ret))
	}
	lines = append(lines, " * \\see "+refpageURL(refs.Tag(), name))
	if note := provenanceNote(name, reg); note != "" {
		lines = append(lines, " * \\note "+note)
	}
	lines = append(lines, " */")
	return lines, true
}

func paramLine(p SigParam, desc string, regParam Param) string {
	line := fmt.Sprintf(" * \\param %s (%s)", p.Name, p.Type)
	if desc != "" {
		line += " - " + desc
	}
	return line + paramTrailer(regParam)
}

// paramTrailer formats the bracketed group/len metadata the registry carries
// for a parameter, or "" when there is none.
func paramTrailer(p Param) string {
	var extras []string
	if p.Group != "" {
		extras = append(extras, "group: "+p.Group)
	}
	if p.Len != "" {
		extras = append(extras, "len: "+p.Len)
	}
	if len(extras) == 0 {
		return ""
	}
	return "  [" + strings.Join(extras, " | ") + "]"
}

// provenanceNote describes where the function came from: its introducing
// core version, its extensions, or both. Empty when the registry knows
// neither.
func provenanceNote(name string, reg *Registry) string {
	version, exts := reg.VersionOrExtensions(name)
	var parts []string
	if version != "" {
		parts = append(parts, "Introduced in OpenGL "+version)
	}
	if len(exts) > 0 {
		parts = append(parts, "Introduced by extension(s): "+strings.Join(exts, ", "))
	}
	return strings.Join(parts, " | ")
}
