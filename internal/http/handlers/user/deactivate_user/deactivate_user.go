package deactivateuser

import (
	"errors"
	"net/http"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	deactivateuser "roomie/internal/core/services/deactivate_user"
	"roomie/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[deactivateuser.Input, deactivateuser.Result]
}

func New(
	service services.Service[deactivateuser.Input, deactivateuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	_, err := h.service.Run(
		r.Context(),
		deactivateuser.Input{},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAccessToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
