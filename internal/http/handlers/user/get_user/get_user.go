package getuser

import (
	"errors"
	"net/http"
	"strconv"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	getuser "roomie/internal/core/services/get_user"
	"roomie/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[getuser.Input, getuser.Result]
}

func New(
	service services.Service[getuser.Input, getuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	User     response.User      `json:"user"`
	Listings []response.Listing `json:"listings"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawUserID := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid user ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		getuser.Input{UserID: user.ID(userID)},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAccessToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "user does not exist", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	listings := make([]response.Listing, 0, len(result.Listings))
	for _, dl := range result.Listings {
		l := response.Listing{}
		l.FromDomainListing(dl)
		listings = append(listings, l)
	}
	response.Render(rw, Result{User: u, Listings: listings}, http.StatusOK)
}
