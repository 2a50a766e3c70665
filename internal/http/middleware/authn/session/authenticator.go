package session

import (
	"net/http"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

// Authenticate implements [authn.Authenticator].
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error) {
	userID, err := h.retrieveSessionUserID(r)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	user, err := h.userStore.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			// The account behind the session is gone; drop the session
			if clearErr := h.clearSession(w, r); clearErr != nil {
				return nil, errors.WithStack(clearErr)
			}

			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

var _ authn.Authenticator = &Handler{}
