package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/userhub/userhub/internal/handler/dto"
	"github.com/userhub/userhub/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users.
// The listing is a constant; POSTs never show up here.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.svc.ListUsers())
	return nil
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateUserRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			// Malformed JSON is a fault, not a validation failure.
			// The boundary turns it into the opaque 500.
			return fmt.Errorf("decode create user request: %w", err)
		}
		// An empty body validates like an empty object.
	} else if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		// Anything after the first value makes the body malformed too.
		return fmt.Errorf("decode create user request: trailing data after JSON body")
	}

	user, err := h.svc.CreateUser(service.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, "Name and email are required")
			return nil
		}
		return err
	}

	h.logger.Info("user_created",
		"user_id", user.ID,
	)

	writeJSON(w, http.StatusCreated, user)
	return nil
}
