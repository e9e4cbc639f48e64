package routes

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/gorilla/mux"
)

var (
	// ErrUnknownRoute is returned when building a name that is not in the table.
	ErrUnknownRoute = errors.New("routes: unknown route")
	// ErrMissingParam is returned when a pattern segment has no value.
	ErrMissingParam = errors.New("routes: missing param")
	// ErrInvalidParam is returned when a value cannot fill a single segment.
	ErrInvalidParam = errors.New("routes: invalid param")
)

// Route is one entry of the route table.
type Route struct {
	Name    Name
	Pattern string
	Icon    string

	title     func(Params) string
	newTarget func(Params) Target
	vars      []string
	mr        *mux.Route
}

// Vars returns the parameter names declared by the pattern, in order.
func (r Route) Vars() []string {
	return append([]string(nil), r.vars...)
}

// Title renders the screen title for the given params.
func (r Route) Title(p Params) string {
	if r.title == nil {
		return string(r.Name)
	}
	return r.title(p)
}

// Build substitutes p into the pattern. Every declared parameter must be
// present and non-empty, and must stay a single path segment.
func (r Route) Build(p Params) (string, error) {
	if r.mr == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, r.Name)
	}
	pairs := make([]string, 0, 2*len(r.vars))
	for _, v := range r.vars {
		val, ok := p[v]
		if !ok || val == "" {
			return "", fmt.Errorf("%w: %s needs %q", ErrMissingParam, r.Name, v)
		}
		if strings.ContainsAny(val, "/?#") || val == "." || val == ".." {
			return "", fmt.Errorf("%w: %s %q=%q", ErrInvalidParam, r.Name, v, val)
		}
		pairs = append(pairs, v, val)
	}
	u, err := r.mr.URLPath(pairs...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidParam, r.Name, err)
	}
	return u.Path, nil
}

// Router resolves paths against an ordered route table. It is immutable
// after construction and safe to share.
type Router struct {
	mux    *mux.Router
	routes []Route
	byName map[Name]int
}

// New compiles table into a Router. Names must be unique and every pattern
// must start with "/".
func New(table []Route) (*Router, error) {
	r := &Router{
		mux:    mux.NewRouter(),
		routes: make([]Route, 0, len(table)),
		byName: make(map[Name]int, len(table)),
	}
	for _, rt := range table {
		if _, dup := r.byName[rt.Name]; dup {
			return nil, fmt.Errorf("routes: duplicate route name %q", rt.Name)
		}
		if rt.Name == NameNotFound {
			return nil, fmt.Errorf("routes: %q is reserved", NameNotFound)
		}
		if rt.newTarget == nil {
			return nil, fmt.Errorf("routes: %s has no target constructor", rt.Name)
		}
		tmpl, vars, err := compilePattern(rt.Pattern)
		if err != nil {
			return nil, fmt.Errorf("routes: %s: %w", rt.Name, err)
		}
		rt.vars = vars
		rt.mr = r.mux.Path(tmpl).Name(string(rt.Name))
		if err := rt.mr.GetError(); err != nil {
			return nil, fmt.Errorf("routes: %s: %w", rt.Name, err)
		}
		r.byName[rt.Name] = len(r.routes)
		r.routes = append(r.routes, rt)
	}
	return r, nil
}

// Default returns a Router over Table.
func Default() *Router {
	r, err := New(Table)
	if err != nil {
		panic(err)
	}
	return r
}

// compilePattern turns "/profile/:handle" into the mux template
// "/profile/{handle}" and the list of variable names.
func compilePattern(pattern string) (string, []string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return "", nil, fmt.Errorf("pattern %q must start with /", pattern)
	}
	if pattern == "/" {
		return "/", nil, nil
	}
	segs := strings.Split(strings.TrimPrefix(pattern, "/"), "/")
	var vars []string
	for i, s := range segs {
		if s == "" {
			return "", nil, fmt.Errorf("pattern %q has an empty segment", pattern)
		}
		if strings.HasPrefix(s, ":") {
			v := s[1:]
			if v == "" {
				return "", nil, fmt.Errorf("pattern %q has an unnamed param", pattern)
			}
			vars = append(vars, v)
			segs[i] = "{" + v + "}"
		}
	}
	return "/" + strings.Join(segs, "/"), vars, nil
}

// CleanPath drops any query or fragment, resolves dot segments and removes
// trailing slashes. The empty path becomes "/".
func CleanPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// MatchPath returns the first route whose pattern matches p, with the
// extracted params. Unmatched paths resolve to NameNotFound and no params.
func (r *Router) MatchPath(p string) (Name, Params) {
	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: CleanPath(p)},
	}
	var m mux.RouteMatch
	if !r.mux.Match(req, &m) || m.Route == nil {
		return NameNotFound, Params{}
	}
	return Name(m.Route.GetName()), Params(m.Vars).Clone()
}

// Resolve is MatchPath followed by the typed constructor for the route.
func (r *Router) Resolve(p string) Target {
	name, params := r.MatchPath(p)
	rt, ok := r.MatchName(name)
	if !ok {
		return NotFound{Path: CleanPath(p)}
	}
	return rt.newTarget(params)
}

// MatchName looks a route up by name.
func (r *Router) MatchName(name Name) (Route, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Route{}, false
	}
	return r.routes[i], true
}

// Build renders the path for name with params substituted.
func (r *Router) Build(name Name, p Params) (string, error) {
	rt, ok := r.MatchName(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return rt.Build(p)
}

// BuildTarget renders the path for a resolved target.
func (r *Router) BuildTarget(t Target) (string, error) {
	return r.Build(t.Name(), t.Params())
}

// Routes returns the table in priority order.
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

// Title returns the display title for t, including NotFound.
func (r *Router) Title(t Target) string {
	return r.describe(t.Name()).Title(t.Params())
}

// Icon returns the glyph shown in the location bar for name.
func (r *Router) Icon(name Name) string {
	return r.describe(name).Icon
}

func (r *Router) describe(name Name) Route {
	if rt, ok := r.MatchName(name); ok {
		return rt
	}
	return notFound
}
