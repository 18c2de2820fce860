package handlers

import "net/http"

func Register(mux *http.ServeMux, trips *TripHandler, times *TimeHandler) {
	mux.HandleFunc("POST /v1/trips/{id}/suggestions", trips.Suggest)
	mux.HandleFunc("GET /v1/trips/{id}/days", trips.Days)
	mux.HandleFunc("GET /v1/trips/{id}/calendar.ics", trips.Calendar)

	mux.HandleFunc("GET /v1/time/instant", times.Instant)
	mux.HandleFunc("GET /v1/time/local", times.Local)
	mux.HandleFunc("GET /v1/time/utc", times.UTC)
}
