package health

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/memehub/memehub/internal/build"
	"github.com/pkg/errors"
)

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func NewHandler() http.Handler {
	mux := &http.ServeMux{}

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		res := Status{
			Status:  "ok",
			Version: build.LongVersion,
		}

		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)

		if err := encoder.Encode(res); err != nil {
			slog.ErrorContext(r.Context(), "could not encode response", slog.Any("error", errors.WithStack(err)))
		}
	})

	return mux
}
