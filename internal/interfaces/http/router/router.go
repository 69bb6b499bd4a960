// Package router assembles the portfolio API routes on a gin engine.
package router

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// Route describes one mounted endpoint
type Route struct {
	Method string
	Path   string
}

func (r Route) String() string {
	return r.Method + " " + r.Path
}

type endpoint struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// Group declares the routes of one area of the API before they are mounted.
// Middleware added with Use covers the group's own routes and every child.
type Group struct {
	name       string
	prefix     string
	middleware []gin.HandlerFunc
	endpoints  []endpoint
	children   []*Group
}

// NewGroup creates a group served under prefix
func NewGroup(name, prefix string) *Group {
	return &Group{name: name, prefix: prefix}
}

// Name returns the group name
func (g *Group) Name() string { return g.name }

// Use adds middleware to the group
func (g *Group) Use(middleware ...gin.HandlerFunc) *Group {
	g.middleware = append(g.middleware, middleware...)
	return g
}

// Handle declares a route; nil handlers are dropped so optional guards can
// be passed unconditionally.
func (g *Group) Handle(method, relativePath string, handlers ...gin.HandlerFunc) *Group {
	chain := make([]gin.HandlerFunc, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			chain = append(chain, h)
		}
	}
	g.endpoints = append(g.endpoints, endpoint{method: method, path: relativePath, handlers: chain})
	return g
}

// GET declares a GET route
func (g *Group) GET(p string, handlers ...gin.HandlerFunc) *Group {
	return g.Handle(http.MethodGet, p, handlers...)
}

// POST declares a POST route
func (g *Group) POST(p string, handlers ...gin.HandlerFunc) *Group {
	return g.Handle(http.MethodPost, p, handlers...)
}

// PUT declares a PUT route
func (g *Group) PUT(p string, handlers ...gin.HandlerFunc) *Group {
	return g.Handle(http.MethodPut, p, handlers...)
}

// DELETE declares a DELETE route
func (g *Group) DELETE(p string, handlers ...gin.HandlerFunc) *Group {
	return g.Handle(http.MethodDelete, p, handlers...)
}

// Child adds a nested group and returns it
func (g *Group) Child(name, prefix string) *Group {
	child := NewGroup(name, prefix)
	g.children = append(g.children, child)
	return child
}

// Mount registers the group on parent and returns what it mounted
func (g *Group) Mount(parent gin.IRouter, base string) []Route {
	rg := parent.Group(g.prefix, g.middleware...)
	full := joinPath(base, g.prefix)

	var mounted []Route
	for _, e := range g.endpoints {
		rg.Handle(e.method, e.path, e.handlers...)
		mounted = append(mounted, Route{Method: e.method, Path: joinPath(full, e.path)})
	}
	for _, child := range g.children {
		mounted = append(mounted, child.Mount(rg, full)...)
	}
	return mounted
}

// Router mounts groups under a common base path such as /api/v1
type Router struct {
	engine *gin.Engine
	base   string
	groups []*Group
}

// NewRouter creates a Router serving groups under base
func NewRouter(engine *gin.Engine, base string) *Router {
	return &Router{engine: engine, base: base}
}

// Register queues groups for Setup
func (r *Router) Register(groups ...*Group) *Router {
	r.groups = append(r.groups, groups...)
	return r
}

// Setup mounts every registered group and returns the route table
func (r *Router) Setup() []Route {
	api := r.engine.Group(r.base)
	var routes []Route
	for _, g := range r.groups {
		routes = append(routes, g.Mount(api, r.base)...)
	}
	return routes
}

func joinPath(base, rel string) string {
	if rel == "" {
		return base
	}
	joined := path.Join(base, rel)
	if strings.HasSuffix(rel, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}
