package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Param is one command parameter as declared in the registry, with the
// optional semantic metadata the registry attaches to it.
type Param struct {
	Type  string
	Name  string
	Group string
	Len   string
}

type command struct {
	ret    string
	params []Param
	alias  string
}

// Registry is the in-memory model of the Khronos API registry (gl.xml).
// It is built once from the source document; every query afterwards is a
// pure lookup.
type Registry struct {
	commands   map[string]command
	aliasOf    map[string]string
	introduced map[string]string
	extensions map[string]map[string]bool
}

// NewRegistry parses the registry document at path and builds the command,
// alias, version and extension indices. Feature blocks are filtered to the
// given api (e.g. "gl"); extension blocks are indexed regardless of api.
func NewRegistry(path, api string, logger *slog.Logger) (*Registry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse registry %s: empty document", path)
	}
	reg := &Registry{
		commands:   make(map[string]command),
		aliasOf:    make(map[string]string),
		introduced: make(map[string]string),
		extensions: make(map[string]map[string]bool),
	}
	reg.parseCommands(root)
	reg.parseFeatures(root, api)
	reg.parseExtensions(root)
	logger.Debug("registry loaded",
		"path", path,
		"api", api,
		"commands", len(reg.commands),
		"aliases", len(reg.aliasOf))
	return reg, nil
}

func (r *Registry) parseCommands(root *etree.Element) {
	for _, block := range root.SelectElements("commands") {
		for _, cmd := range block.SelectElements("command") {
			proto := cmd.SelectElement("proto")
			if proto == nil {
				continue
			}
			name := childText(proto, "name")
			if name == "" {
				continue
			}
			ret := stripCallConv(stripWord(normWS(flattenText(proto)), name))
			var params []Param
			for _, p := range cmd.SelectElements("param") {
				pname := childText(p, "name")
				if pname == "" {
					continue
				}
				params = append(params, Param{
					Type:  stripCallConv(stripWord(normWS(flattenText(p)), pname)),
					Name:  pname,
					Group: p.SelectAttrValue("group", ""),
					Len:   p.SelectAttrValue("len", ""),
				})
			}
			alias := cmd.SelectAttrValue("alias", "")
			if alias != "" {
				r.aliasOf[name] = alias
			}
			r.commands[name] = command{ret: ret, params: params, alias: alias}
		}
	}
}

func (r *Registry) parseFeatures(root *etree.Element, api string) {
	for _, feat := range root.SelectElements("feature") {
		if feat.SelectAttrValue("api", "") != api {
			continue
		}
		number := feat.SelectAttrValue("number", "")
		if number == "" {
			continue
		}
		for _, req := range feat.SelectElements("require") {
			for _, c := range req.SelectElements("command") {
				name := c.SelectAttrValue("name", "")
				if name == "" {
					continue
				}
				prev, ok := r.introduced[name]
				if !ok || versionLess(number, prev) {
					r.introduced[name] = number
				}
			}
		}
	}
}

func (r *Registry) parseExtensions(root *etree.Element) {
	for _, block := range root.SelectElements("extensions") {
		for _, ext := range block.SelectElements("extension") {
			extName := ext.SelectAttrValue("name", "")
			if extName == "" {
				continue
			}
			for _, req := range ext.SelectElements("require") {
				for _, c := range req.SelectElements("command") {
					name := c.SelectAttrValue("name", "")
					if name == "" {
						continue
					}
					if r.extensions[name] == nil {
						r.extensions[name] = make(map[string]bool)
					}
					r.extensions[name][extName] = true
				}
			}
		}
	}
}

// versionLess reports whether a sorts before b as dot-separated integer
// versions. Either side failing to parse makes the pair non-comparable and
// the existing value is retained.
func versionLess(a, b string) bool {
	av, ok := parseVersion(a)
	if !ok {
		return false
	}
	bv, ok := parseVersion(b)
	if !ok {
		return false
	}
	for i := 0; i < len(av) && i < len(bv); i++ {
		if av[i] != bv[i] {
			return av[i] < bv[i]
		}
	}
	return len(av) < len(bv)
}

func parseVersion(s string) ([]int, bool) {
	parts := strings.Split(s, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// ResolveAlias follows alias pointers until it reaches a command with no
// alias entry. A seen-set guards against cycles in the registry data:
// resolution stops at the last name visited before a repeat, never hangs.
func (r *Registry) ResolveAlias(name string) string {
	seen := make(map[string]bool)
	cur := name
	for {
		next, ok := r.aliasOf[cur]
		if !ok || seen[cur] {
			return cur
		}
		seen[cur] = true
		cur = next
	}
}

// Signature returns the return type and parameter list for an exact command
// name. The second return is false when the registry has no such command.
func (r *Registry) Signature(name string) (string, []Param, bool) {
	cmd, ok := r.commands[name]
	if !ok {
		return "", nil, false
	}
	return cmd.ret, cmd.params, true
}

// SignatureCanonical resolves aliasing first and returns the canonical
// command's signature along with the canonical name itself.
func (r *Registry) SignatureCanonical(name string) (string, []Param, string, bool) {
	canon := r.ResolveAlias(name)
	ret, params, ok := r.Signature(canon)
	if !ok {
		return "", nil, "", false
	}
	return ret, params, canon, true
}

// VersionOrExtensions returns the core version that introduced the command
// (the literal name takes priority over its canonical form) and the sorted
// union of extension names requiring either name. Version is "" and the
// slice empty when the registry knows nothing.
func (r *Registry) VersionOrExtensions(name string) (string, []string) {
	version, ok := r.introduced[name]
	canon := r.ResolveAlias(name)
	if !ok {
		version = r.introduced[canon]
	}
	union := make(map[string]bool)
	for ext := range r.extensions[name] {
		union[ext] = true
	}
	for ext := range r.extensions[canon] {
		union[ext] = true
	}
	exts := make([]string, 0, len(union))
	for ext := range union {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return version, exts
}
