package http

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"

	"custsvc/internal/middleware"
)

func NewRouter(h *Handler, allowOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(StatusOK) })

	// every customer route also answers with a trailing slash
	for _, p := range []string{"/customers", "/customers/"} {
		r.HandleFunc(p, h.ListCustomers).Methods(http.MethodGet)
		r.HandleFunc(p, h.CreateCustomer).Methods(http.MethodPost)
	}
	for _, p := range []string{"/customers/{id}", "/customers/{id}/"} {
		r.HandleFunc(p, h.GetCustomer).Methods(http.MethodGet)
		r.HandleFunc(p, h.UpdateCustomer).Methods(http.MethodPut)
		r.HandleFunc(p, h.DeleteCustomer).Methods(http.MethodDelete)
	}

	// wrapped outside mux so preflights for unmatched methods still get CORS
	var handler http.Handler = r
	handler = middleware.CORS(allowOrigins)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	handler = chimw.Recoverer(handler)
	return handler
}
