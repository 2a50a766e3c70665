package session

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/memehub/memehub/internal/http/handler/webui/common"
	"github.com/memehub/memehub/internal/http/middleware/authn/session/component"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
)

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Already authenticated sessions land on the feed
	if user := httpCtx.User(ctx); user != nil {
		http.Redirect(w, r, httpCtx.BaseURL(ctx).String(), http.StatusSeeOther)
		return
	}

	vmodel := component.LoginPageVModel{
		Flashes: h.notifier.Pop(w, r),
	}
	loginPage := component.LoginPage(vmodel)

	templ.Handler(loginPage).ServeHTTP(w, r)
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.accounts.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrMissingCredentials) {
			h.notifier.Notify(w, r, flash.SeverityError, "Invalid email or password.")
			http.Redirect(w, r, loginURL(ctx), http.StatusSeeOther)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := h.StoreUser(w, r, user); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.notifier.Notify(w, r, flash.SeveritySuccess, "Signed in successfully!")

	http.Redirect(w, r, httpCtx.BaseURL(ctx).String(), http.StatusSeeOther)
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.accounts.SignUp(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			h.notifier.Notify(w, r, flash.SeverityError, "Email and password are both required.")
		case errors.Is(err, port.ErrDuplicateEmail):
			h.notifier.Notify(w, r, flash.SeverityError, "An account already exists for this email.")
		default:
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		http.Redirect(w, r, loginURL(ctx), http.StatusSeeOther)
		return
	}

	// Account creation establishes the session immediately
	if err := h.StoreUser(w, r, user); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.notifier.Notify(w, r, flash.SeveritySuccess, "Account created successfully!")

	http.Redirect(w, r, httpCtx.BaseURL(ctx).String(), http.StatusSeeOther)
}
