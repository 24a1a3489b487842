package updateuser

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "roomie/internal/core/domain/common"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	updateuser "roomie/internal/core/services/update_user"
	"roomie/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[updateuser.Input, updateuser.Result]
}

func New(
	service services.Service[updateuser.Input, updateuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// Input is a patch: a field is updated only if its key is present in the
// request body. Keys outside the allow list are ignored, except the
// credential keys which make the whole request fail.
type Input struct {
	DoNameUpdate           bool
	Name                   string
	DoEmailUpdate          bool
	Email                  string
	DoProfilePictureUpdate bool
	ProfilePicture         *string
	DoAboutUpdate          bool
	About                  *string
	DoAgeUpdate            bool
	Age                    *int
	DoCollegeUpdate        bool
	College                *string
}

var ErrCredentialUpdate = errors.New("this route is not for password updates, use /updateMyPassword")

func (i *Input) FromJSON(r io.Reader) error {
	raw := map[string]json.RawMessage{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	if _, ok := raw["password"]; ok {
		return ErrCredentialUpdate
	}
	if _, ok := raw["passwordConfirm"]; ok {
		return ErrCredentialUpdate
	}

	if v, ok := raw["name"]; ok {
		i.DoNameUpdate = true
		if err := json.Unmarshal(v, &i.Name); err != nil {
			return err
		}
	}
	if v, ok := raw["email"]; ok {
		i.DoEmailUpdate = true
		if err := json.Unmarshal(v, &i.Email); err != nil {
			return err
		}
	}
	if v, ok := raw["profilePicture"]; ok {
		i.DoProfilePictureUpdate = true
		if err := decodeNullable(v, &i.ProfilePicture); err != nil {
			return err
		}
	}
	if v, ok := raw["about"]; ok {
		i.DoAboutUpdate = true
		if err := decodeNullable(v, &i.About); err != nil {
			return err
		}
	}
	if v, ok := raw["age"]; ok {
		i.DoAgeUpdate = true
		if err := decodeNullable(v, &i.Age); err != nil {
			return err
		}
	}
	if v, ok := raw["college"]; ok {
		i.DoCollegeUpdate = true
		if err := decodeNullable(v, &i.College); err != nil {
			return err
		}
	}
	return nil
}

func decodeNullable[T any](raw json.RawMessage, dst **T) error {
	if bytes.Equal(raw, []byte("null")) {
		*dst = nil
		return nil
	}
	value := new(T)
	if err := json.Unmarshal(raw, value); err != nil {
		return err
	}
	*dst = value
	return nil
}

func (i Input) Validate() error {
	fields := []*validation.FieldRules{
		validation.Field(&i.About, validation.Length(0, 4096)),
		validation.Field(&i.Age, validation.Min(16), validation.Max(120)),
		validation.Field(&i.College, validation.Length(0, 256)),
	}
	if i.DoNameUpdate {
		fields = append(fields, validation.Field(&i.Name, validation.Required, validation.Length(1, 256)))
	}
	if i.DoEmailUpdate {
		fields = append(fields, validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)))
	}
	return validation.ValidateStruct(&i, fields...)
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		if errors.Is(err, ErrCredentialUpdate) {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		updateuser.Input{
			DoNameUpdate:           input.DoNameUpdate,
			Name:                   input.Name,
			DoEmailUpdate:          input.DoEmailUpdate,
			Email:                  c.NewEmail(input.Email),
			DoProfilePictureUpdate: input.DoProfilePictureUpdate,
			ProfilePicture:         optionalString(input.ProfilePicture),
			DoAboutUpdate:          input.DoAboutUpdate,
			About:                  optionalString(input.About),
			DoAgeUpdate:            input.DoAgeUpdate,
			Age:                    optionalInt(input.Age),
			DoCollegeUpdate:        input.DoCollegeUpdate,
			College:                optionalString(input.College),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAccessToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrEmailAlreadyExists):
			response.RenderError(rw, "email already exists", http.StatusBadRequest)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}

func optionalString(v *string) c.Optional[string] {
	if v == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*v, true)
}

func optionalInt(v *int) c.Optional[int] {
	if v == nil {
		return c.Optional[int]{}
	}
	return c.NewOptional(*v, true)
}
