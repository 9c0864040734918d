package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HelloResponse represents the greeting response
// swagger:model HelloResponse
type HelloResponse struct {
	// Greeting message
	// default: Hello!
	Message string `json:"message"`

	// Server time
	Timestamp time.Time `json:"timestamp"`
}

// NewHelloHandler returns an HTTP handler for the greeting endpoint.
// @Summary Hello
// @Description Returns a greeting message with the current server time
// @Tags misc
// @Produce json
// @Success 200 {object} handlers.HelloResponse "Greeting"
// @Router /hello [get]
func NewHelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HelloResponse{
			Message:   "Hello!",
			Timestamp: time.Now().UTC(),
		})
	}
}
