package listusers

import (
	e "accountd/internal/core/domain/errors"
	"accountd/internal/core/services"
	service "accountd/internal/core/services/list_users"
	"accountd/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
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
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Users: response.UsersFromDomain(result.Users)}, http.StatusOK)
}
