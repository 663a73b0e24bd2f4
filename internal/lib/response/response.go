package response

import (
	"encoding/json"
	"net/http"

	"rentals/internal/lib/logger/utils"

	"go.uber.org/zap"
)

func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; all that is left is to record it.
		utils.Logger.Error("response.JSON - encode failed", zap.Error(err), zap.Int("status", statusCode))
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, errResponse{Error: message})
}
