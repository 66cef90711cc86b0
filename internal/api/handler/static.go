package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/victin77/dashboard-love/pkg/apiErrors"
)

const indexFile = "index.html"

// SPAHandler serve o build do frontend. Caminhos sem arquivo correspondente recebem o index.html,
// e o roteamento fica por conta do cliente. Rotas /api desconhecidas respondem 404 em JSON.
func SPAHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", nil)
			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", nil)
			return
		}

		cleaned := path.Clean("/" + r.URL.Path)
		requested := filepath.Join(staticDir, filepath.FromSlash(cleaned))

		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}

		index := filepath.Join(staticDir, indexFile)
		if _, err := os.Stat(index); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Frontend não encontrado", nil)
			return
		}

		http.ServeFile(w, r, index)
	})
}

// MethodNotAllowedHandler responde 405 em JSON quando o caminho existe com outro método
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado nesta rota", map[string]string{"method": r.Method})
	})
}
