package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/txix-open/isp-kit/json"
)

type Routes struct {
	api http.Handler
}

func NewRoutes(api http.Handler) Routes {
	return Routes{
		api: api,
	}
}

// Handler routes the quoting endpoint and answers CORS preflights for any
// path; OPTIONS requests short-circuit inside the middleware chain.
func (r Routes) Handler() http.Handler {
	router := mux.NewRouter()
	router.Handle("/calculate-shipping", r.api).Methods(http.MethodPost)
	router.PathPrefix("/").Handler(r.api).Methods(http.MethodOptions)
	router.HandleFunc("/health", health).Methods(http.MethodGet)
	return router
}

func health(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(writer).Encode(map[string]string{"status": "ok"})
}
