package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_MiddlewareOrder(t *testing.T) {
	var order []string

	tag := func(name string) alice.Constructor {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/items/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler:"+httprouter.ParamsFromContext(r.Context()).ByName("id"))
		}),
		Middlewares: []alice.Constructor{tag("primeiro"), tag("segundo")},
	}))

	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/7", nil))

	assert.Equal(t, []string{"primeiro", "segundo", "handler:7"}, order)
}

func TestRouter_Fallbacks(t *testing.T) {
	status := func(code int) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})
	}

	rt := New(
		WithRoutes(Route{Path: "/a", Method: http.MethodGet, Handler: status(http.StatusOK)}),
		WithNotFound(status(http.StatusTeapot)),
		WithMethodNotAllowed(status(http.StatusMethodNotAllowed)),
	)

	tests := []struct {
		name         string
		method       string
		target       string
		expectedCode int
	}{
		{"rota registrada", http.MethodGet, "/a", http.StatusOK},
		{"rota desconhecida", http.MethodGet, "/qualquer/coisa", http.StatusTeapot},
		{"método errado", http.MethodDelete, "/a", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRouter_Routes(t *testing.T) {
	rt := New(
		WithRoutes(
			Route{Path: "/a", Method: http.MethodGet, Handler: http.NotFoundHandler()},
			Route{Path: "/a", Method: http.MethodPost, Handler: http.NotFoundHandler()},
		),
		WithRoutes(Route{Path: "/b/:id", Method: http.MethodDelete, Handler: http.NotFoundHandler()}),
	)

	routes := rt.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/b/:id", routes[2].Path)

	// a cópia devolvida não altera a tabela
	routes[0].Path = "/x"
	assert.Equal(t, "/a", rt.Routes()[0].Path)
}
