// Package router maps client paths to views.
//
// The route table is an ordered list of patterns compiled once into regular
// expressions with one named group per ":param" segment. Resolve walks the
// list and returns the first pattern that matches every segment exactly; a
// path that matches none resolves to no view.
package router

import (
	"net/url"
	"regexp"
	"strings"
)

type View int

const (
	ViewNone View = iota
	ViewHome
	ViewSignUp
	ViewLogin
	ViewActivation
	ViewUserProfile
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewSignUp:
		return "signup"
	case ViewLogin:
		return "login"
	case ViewActivation:
		return "activation"
	case ViewUserProfile:
		return "user"
	default:
		return "none"
	}
}

// Route is a resolved path.
type Route struct {
	Path    string
	Pattern string
	View    View
	Params  map[string]string
}

// Param returns the named path parameter, or "".
func (r Route) Param(name string) string {
	return r.Params[name]
}

type pattern struct {
	raw  string
	view View
	re   *regexp.Regexp
}

var table = compileAll([]struct {
	raw  string
	view View
}{
	{"/", ViewHome},
	{"/signup", ViewSignUp},
	{"/login", ViewLogin},
	{"/activate/:token", ViewActivation},
	{"/user/:id", ViewUserProfile},
})

func compileAll(defs []struct {
	raw  string
	view View
}) []pattern {
	out := make([]pattern, 0, len(defs))
	for _, d := range defs {
		out = append(out, pattern{raw: d.raw, view: d.view, re: compile(d.raw)})
	}
	return out
}

// compile turns "/user/:id" into ^/user/(?P<id>[^/]+)$.
func compile(raw string) *regexp.Regexp {
	segments := strings.Split(strings.TrimPrefix(raw, "/"), "/")
	var sb strings.Builder
	sb.WriteString("^")
	for _, seg := range segments {
		sb.WriteString("/")
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			sb.WriteString("(?P<" + name + ">[^/]+)")
			continue
		}
		sb.WriteString(regexp.QuoteMeta(seg))
	}
	sb.WriteString("$")
	return regexp.MustCompile(sb.String())
}

// Resolve returns the route for path. Query string and fragment are ignored.
func Resolve(path string) (Route, bool) {
	clean := stripQuery(path)
	for _, p := range table {
		m := p.re.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		params, ok := captureParams(p.re, m)
		if !ok {
			break
		}
		return Route{Path: clean, Pattern: p.raw, View: p.view, Params: params}, true
	}
	return Route{Path: clean, View: ViewNone}, false
}

// captureParams returns the named groups of m, percent-decoded. A malformed
// escape makes the path unroutable.
func captureParams(re *regexp.Regexp, m []string) (map[string]string, bool) {
	params := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		v, err := url.PathUnescape(m[i])
		if err != nil {
			return nil, false
		}
		params[name] = v
	}
	return params, true
}

func stripQuery(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	return path
}

// UserPath is the profile route of a user.
func UserPath(id int64) string {
	return "/user/" + itoa(id)
}

// ActivationPath is the activation route for token.
func ActivationPath(token string) string {
	return "/activate/" + url.PathEscape(token)
}
