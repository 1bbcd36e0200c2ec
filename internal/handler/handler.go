package handler

import (
	"net/http"

	"github.com/viftode4/partydrinks/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
