package utils

import (
	"encoding/json"
	"net/http"

	"github.com/viftode4/partydrinks/internal/apperr"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Success répond 200 avec l'enveloppe standard
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Created répond 201 (création d'événement, inscription)
func Created(w http.ResponseWriter, data interface{}, msg string) {
	JSON(w, http.StatusCreated, APIResponse{Success: true, Data: data, Message: msg})
}

// Error répond avec le statut donné ; l'erreur détaillée reste côté serveur.
// Les défauts de collaborateurs (config, stockage) sont marqués comme alertes
// opérationnelles dans les logs.
func Error(w http.ResponseWriter, status int, message string, errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if apperr.Operational(err) {
			LogError("[ALERT][%d] %s: %v", status, message, err)
		} else {
			LogError("[%d] %s: %v", status, message, err)
		}
	}
	JSON(w, status, APIResponse{Success: false, Error: message})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
