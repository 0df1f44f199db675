package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"agri-advice/internal/infra/handlers"
)

type Routes struct {
	Mux             *mux.Router
	AdviceHandlers  *handlers.AdviceHandlers
	HistoryHandlers *handlers.HistoryHandlers
	ProfileHandlers *handlers.ProfileHandlers
	ExternalHandler *handlers.ExternalHandlers
	Auth            func(http.Handler) http.Handler
}

func NewRoutes(router *mux.Router, advice *handlers.AdviceHandlers, history *handlers.HistoryHandlers, profile *handlers.ProfileHandlers, external *handlers.ExternalHandlers, auth func(http.Handler) http.Handler) *Routes {
	return &Routes{
		Mux:             router,
		AdviceHandlers:  advice,
		HistoryHandlers: history,
		ProfileHandlers: profile,
		ExternalHandler: external,
		Auth:            auth,
	}
}

// Init registers the API surface. Weather and prices stay public; everything
// touching user-owned data sits behind the identity check.
func (r *Routes) Init() {
	api := r.Mux.PathPrefix("/api").Subrouter()

	external := api.PathPrefix("/external").Subrouter()
	external.HandleFunc("/weather", r.ExternalHandler.GetWeather).Methods(http.MethodGet)
	external.HandleFunc("/prices", r.ExternalHandler.GetPrices).Methods(http.MethodGet)
	external.HandleFunc("/valid-params", r.ExternalHandler.GetValidParams).Methods(http.MethodGet)
	external.HandleFunc("/valid-markets", r.ExternalHandler.GetValidMarkets).Methods(http.MethodGet)
	external.Handle("/identify", r.Auth(http.HandlerFunc(r.ExternalHandler.IdentifyPlant))).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(mux.MiddlewareFunc(r.Auth))
	protected.HandleFunc("/advice", r.AdviceHandlers.SubmitAdvice).Methods(http.MethodPost)
	protected.HandleFunc("/voice/tts", r.AdviceHandlers.SynthesizeSpeech).Methods(http.MethodPost)
	protected.HandleFunc("/history", r.HistoryHandlers.ListHistory).Methods(http.MethodGet)
	protected.HandleFunc("/history/{id}", r.HistoryHandlers.DeleteHistory).Methods(http.MethodDelete)
	protected.HandleFunc("/users", r.ProfileHandlers.UpsertProfile).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}", r.ProfileHandlers.GetProfile).Methods(http.MethodGet)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
