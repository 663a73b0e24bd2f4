package middleware

import (
	"net/http"
	"strings"

	"rentals/internal/lib/logger/utils"
	"rentals/internal/lib/response"
)

// HeaderUserID carries the user authenticated by the upstream auth layer.
const HeaderUserID = "X-User-ID"

func UserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(HeaderUserID))
}

// RequireUser writes 401 and returns false when the request has no user.
func RequireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := UserID(r)
	if userID == "" {
		utils.Logger.Warn("RequireUser - missing " + HeaderUserID + " header")
		response.Error(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}
