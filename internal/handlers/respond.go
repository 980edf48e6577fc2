package handlers

import (
	"encoding/json"
	"net/http"
)

// dataEnvelope is the response wrapper every endpoint uses.
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

func writeData(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dataEnvelope{Data: payload})
}
