package session

import (
	"net/http"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/pkg/errors"
)

var errSessionNotFound = errors.New("session not found")

const keySessionUserID = "user_id"

func (h *Handler) StoreUser(w http.ResponseWriter, r *http.Request, user model.User) error {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	session.Values[keySessionUserID] = string(user.ID())

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUserID(r *http.Request) (model.UserID, error) {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return "", errors.WithStack(err)
	}

	rawUserID, exists := session.Values[keySessionUserID]
	if !exists {
		return "", errors.WithStack(errSessionNotFound)
	}

	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		return "", errors.WithStack(errSessionNotFound)
	}

	return model.UserID(userID), nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	delete(session.Values, keySessionUserID)
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
