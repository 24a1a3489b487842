package signup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "roomie/internal/core/domain/common"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	signup "roomie/internal/core/services/sign_up"
	"roomie/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(
	service services.Service[signup.Input, signup.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"passwordConfirm"`
	ProfilePicture  *string `json:"profilePicture"`
	About           *string `json:"about"`
	Age             *int    `json:"age"`
	College         *string `json:"college"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.PasswordConfirm, validation.Required, validation.By(matchesPassword(i.Password))),
		validation.Field(&i.About, validation.Length(0, 4096)),
		validation.Field(&i.Age, validation.Min(16), validation.Max(120)),
		validation.Field(&i.College, validation.Length(0, 256)),
	)
}

func matchesPassword(password string) validation.RuleFunc {
	return func(value interface{}) error {
		confirm, _ := value.(string)
		if confirm != password {
			return errors.New("passwords do not match")
		}
		return nil
	}
}

type Result struct {
	Token string        `json:"token"`
	User  response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Name:           input.Name,
			Email:          c.NewEmail(input.Email),
			Password:       user.RawPassword(input.Password),
			ProfilePicture: optionalString(input.ProfilePicture),
			About:          optionalString(input.About),
			Age:            optionalInt(input.Age),
			College:        optionalString(input.College),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{Token: string(result.Token), User: u}, http.StatusCreated)
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
