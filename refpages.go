package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// defaultCollectionTag is used for \see links when no refpage directory was
// supplied.
const defaultCollectionTag = "gl4"

// SigParam is one (type, name) pair from a refpage function prototype, in
// declaration order.
type SigParam struct {
	Type string
	Name string
}

// RefPages lazily loads DocBook reference pages, one document per function
// name, from a directory of <name>.xml files. Every document is parsed at
// most once per run; misses are memoized too. A malformed document gets one
// lenient re-parse before being treated as absent.
type RefPages struct {
	dir    string
	tag    string
	cache  map[string]*etree.Element
	logger *slog.Logger
}

// NewRefPages builds a store over dir. The directory may be empty, in which
// case every lookup misses and the collection tag falls back to the default.
func NewRefPages(dir string, logger *slog.Logger) *RefPages {
	tag := defaultCollectionTag
	if dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		tag = filepath.Base(dir)
	}
	return &RefPages{
		dir:    dir,
		tag:    tag,
		cache:  make(map[string]*etree.Element),
		logger: logger,
	}
}

// Tag is the collection identifier used to build reference URLs, derived
// from the final path segment of the refpage directory.
func (rp *RefPages) Tag() string {
	return rp.tag
}

// load returns the root element of the refpage for fn, or nil when the page
// is absent or unrecoverably malformed.
func (rp *RefPages) load(fn string) *etree.Element {
	if root, ok := rp.cache[fn]; ok {
		return root
	}
	root := rp.parse(fn)
	rp.cache[fn] = root
	return root
}

func (rp *RefPages) parse(fn string) *etree.Element {
	if rp.dir == "" {
		return nil
	}
	path := filepath.Join(rp.dir, fn+".xml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err == nil && doc.Root() != nil {
		return doc.Root()
	}
	// One recovery attempt: strip doctype and unresolvable entities, then
	// re-parse permissively. Failure past this point means "no page".
	doc = etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromString(lenientRecover(string(raw))); err != nil || doc.Root() == nil {
		rp.logger.Debug("refpage unrecoverable", "function", fn, "path", path)
		return nil
	}
	rp.logger.Debug("refpage recovered leniently", "function", fn, "path", path)
	return doc.Root()
}

// Brief extracts the one-line purpose description of fn. The second return
// is false when the page or its refpurpose element is absent.
func (rp *RefPages) Brief(fn string) (string, bool) {
	root := rp.load(fn)
	if root == nil {
		return "", false
	}
	purpose := findFirst(root, "refpurpose")
	if purpose == nil {
		return "", false
	}
	text := normWS(flattenText(purpose))
	if text == "" {
		return "", false
	}
	return text, true
}

// CSignature scans the page's function prototypes for one declaring fn
// exactly and returns its return-type text and ordered parameters. The last
// return is false when no matching prototype exists.
func (rp *RefPages) CSignature(fn string) (string, []SigParam, bool) {
	root := rp.load(fn)
	if root == nil {
		return "", nil, false
	}
	for _, proto := range findAll(root, "funcprototype") {
		fdef := childElem(proto, "funcdef")
		if fdef == nil {
			continue
		}
		name := strings.TrimSpace(flattenText(childElem(fdef, "function")))
		if name != fn {
			continue
		}
		ret := stripWord(normWS(flattenText(fdef)), name)
		var params []SigParam
		for _, pdef := range childElems(proto, "paramdef") {
			pname := strings.TrimSpace(flattenText(childElem(pdef, "parameter")))
			if pname == "" {
				continue
			}
			params = append(params, SigParam{
				Type: stripWord(normWS(flattenText(pdef)), pname),
				Name: pname,
			})
		}
		return ret, params, true
	}
	return "", nil, false
}

// ParamDescriptions maps parameter names to their prose descriptions from
// the page's Parameters section. An entry listing several terms fans its
// description out to every one of them. Returns an empty map when the
// section or list is absent.
func (rp *RefPages) ParamDescriptions(fn string) map[string]string {
	out := make(map[string]string)
	root := rp.load(fn)
	if root == nil {
		return out
	}
	sect := paramSection(root)
	if sect == nil {
		return out
	}
	for _, vlist := range findAll(sect, "variablelist") {
		for _, entry := range childElems(vlist, "varlistentry") {
			var names []string
			for _, term := range childElems(entry, "term") {
				if name := strings.TrimSpace(flattenText(childElem(term, "parameter"))); name != "" {
					names = append(names, name)
				}
			}
			if len(names) == 0 {
				continue
			}
			desc := normWS(flattenText(childElem(entry, "listitem")))
			if desc == "" {
				continue
			}
			for _, name := range names {
				out[name] = desc
			}
		}
	}
	return out
}

// paramSection finds the refsect1 whose xml:id or title marks it as the
// parameters section.
func paramSection(root *etree.Element) *etree.Element {
	for _, sect := range findAll(root, "refsect1") {
		if sect.SelectAttrValue("xml:id", "") == "parameters" {
			return sect
		}
		title := strings.ToLower(strings.TrimSpace(flattenText(childElem(sect, "title"))))
		if title == "parameters" {
			return sect
		}
	}
	return nil
}
