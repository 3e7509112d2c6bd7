package router

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/zndrme19-del/soda-pop-pos/internal/handler"
)

// NewRouter wires the HTTP surface onto a ServeMux. Method dispatch lives
// here; handlers only see requests for their own operation.
func NewRouter(menuHandler *handler.MenuHandler, categoryHandler *handler.CategoryHandler, orderHandler *handler.OrderHandler, salesHandler *handler.SalesHandler, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/menu", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			menuHandler.List(w, r)
		case http.MethodPost:
			menuHandler.Create(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/api/menu/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			menuHandler.Update(w, r)
		case http.MethodDelete:
			menuHandler.Delete(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			categoryHandler.List(w, r)
		case http.MethodPost:
			categoryHandler.Create(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			categoryHandler.Delete(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			orderHandler.List(w, r)
		case http.MethodPost:
			orderHandler.Create(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/finish") {
			orderHandler.Finish(w, r)
			return
		}
		methodNotAllowed(w)
	})

	mux.HandleFunc("/api/sales/history", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			salesHandler.History(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/api/sales/reset", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			salesHandler.Reset(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// The register UI is plain static files, served the same way the
	// rest of the app is configured: only when the directory exists.
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			mux.Handle("/", http.FileServer(http.Dir(staticDir)))
		}
	}

	return mux
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
}
