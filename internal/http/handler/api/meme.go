package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/core/service"
	httpCtx "github.com/memehub/memehub/internal/http/context"
	"github.com/pkg/errors"
)

type MemeHeader struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	UserID  string    `json:"userId"`
	Author  string    `json:"author"`
	Likes   int64     `json:"likes"`
	Created time.Time `json:"created"`
}

type ListMemesResponse struct {
	Memes []MemeHeader `json:"memes"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (h *Handler) handleListMemes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := getQueryPage(query, 0)
	limit := getQueryLimit(query, 50)

	ctx := r.Context()

	opts := port.QueryMemesOptions{
		Page:  &page,
		Limit: &limit,
	}

	memes, total, err := h.feed.LoadFeed(ctx, opts)
	if err != nil {
		slog.ErrorContext(ctx, "could not load feed", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListMemesResponse{
		Memes: make([]MemeHeader, 0, len(memes)),
		Total: total,
		Page:  page,
		Limit: limit,
	}

	for _, m := range memes {
		res.Memes = append(res.Memes, asMemeHeader(m))
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}

type CreateMemeRequest struct {
	Content string `json:"content"`
}

type CreateMemeResponse struct {
	Meme MemeHeader `json:"meme"`
}

func (h *Handler) handleCreateMeme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req CreateMemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	meme, err := h.feed.CreateMeme(ctx, user, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			http.Error(w, "content must not be empty", http.StatusUnprocessableEntity)
			return
		}

		slog.ErrorContext(ctx, "could not create meme", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := CreateMemeResponse{
		Meme: asMemeHeader(meme),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	encoder := json.NewEncoder(w)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}

func (h *Handler) handleLikeMeme(w http.ResponseWriter, r *http.Request) {
	memeID := model.MemeID(r.PathValue("memeID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	if err := h.feed.LikeMeme(ctx, user, memeID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not like meme", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteMeme(w http.ResponseWriter, r *http.Request) {
	memeID := model.MemeID(r.PathValue("memeID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	if err := h.feed.DeleteMeme(ctx, user, memeID); err != nil {
		switch {
		case errors.Is(err, port.ErrNotFound):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotOwner):
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		slog.ErrorContext(ctx, "could not delete meme", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func asMemeHeader(m model.Meme) MemeHeader {
	return MemeHeader{
		ID:      string(m.ID()),
		Content: m.Content(),
		UserID:  string(m.OwnerID()),
		Author:  m.Author(),
		Likes:   m.Likes(),
		Created: m.CreatedAt(),
	}
}
