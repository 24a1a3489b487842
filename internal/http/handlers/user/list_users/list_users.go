package listusers

import (
	"errors"
	"net/http"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	listusers "roomie/internal/core/services/list_users"
	"roomie/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listusers.Input, listusers.Result]
}

func New(
	service services.Service[listusers.Input, listusers.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Users []response.User `json:"users"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		listusers.Input{},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAccessToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	users := make([]response.User, 0, len(result.Users))
	for _, du := range result.Users {
		u := response.User{}
		u.FromDomainUser(du)
		users = append(users, u)
	}
	response.Render(rw, Result{Users: users}, http.StatusOK)
}
