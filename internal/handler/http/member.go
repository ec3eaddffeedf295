package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/utils"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// authenticateHeader carries the member token in both directions.
const authenticateHeader = "WWW-Authenticate"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	credentials, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	member, err := h.services.MemberService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", member.MemberID).Msg("member registered")
	h.respondWithToken(w, r, member, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	credentials, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	member, err := h.services.MemberService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", member.MemberID).Msg("member successfully logged in")
	h.respondWithToken(w, r, member, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, member models.Member, status int) {
	token, err := h.services.MemberService.CreateToken(r.Context(), member)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(authenticateHeader, token.SignedString)
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, status)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, bool) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return models.Credentials{}, false
	}
	return credentials, true
}
