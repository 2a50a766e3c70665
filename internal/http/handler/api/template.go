package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

type TemplateHeader struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	TextBoxes int    `json:"textBoxes"`
}

type ListTemplatesResponse struct {
	Templates []TemplateHeader `json:"templates"`
}

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := h.catalog.ListTemplates(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list templates", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListTemplatesResponse{
		Templates: make([]TemplateHeader, 0, len(templates)),
	}

	for _, t := range templates {
		res.Templates = append(res.Templates, TemplateHeader{
			ID:        string(t.ID()),
			Name:      t.Name(),
			ImageURL:  t.ImageURL(),
			TextBoxes: t.TextBoxes(),
		})
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}
