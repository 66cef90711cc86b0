// Package router monta a tabela de rotas da API sobre o httprouter
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// Route é uma entrada da tabela. Middlewares rodam na ordem da lista, o primeiro por fora.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []alice.Constructor
}

type Router struct {
	router *httprouter.Router
	routes []Route
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithNotFound define o handler das rotas não registradas
func WithNotFound(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.NotFound = handler
	}
}

// WithMethodNotAllowed define a resposta para caminho conhecido com método errado
func WithMethodNotAllowed(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.HandleMethodNotAllowed = true
		router.router.MethodNotAllowed = handler
	}
}

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, alice.New(route.Middlewares...).Then(route.Handler))
		r.routes = append(r.routes, route)
	}
}

// Routes devolve as rotas registradas, na ordem de registro
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}
