package updateuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	c "roomie/internal/core/domain/common"
	"roomie/internal/core/domain/user"
	service "roomie/internal/core/services/update_user"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func newStubService() *stubService {
	return &stubService{}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.User = user.User{ID: 1, Name: input.Name, Email: input.Email, Role: user.RoleUser, IsActive: true}
	return result, nil
}

func TestUpdateUserHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "name and email",
			body:           `{"name": "Janet", "email": "janet@test.com"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				DoNameUpdate:  true,
				Name:          "Janet",
				DoEmailUpdate: true,
				Email:         c.NewEmail("janet@test.com"),
			},
		},
		{
			id:             "profile fields",
			body:           `{"about": "hi there", "age": 25, "college": "Test College"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				DoAboutUpdate:   true,
				About:           c.NewOptional("hi there", true),
				DoAgeUpdate:     true,
				Age:             c.NewOptional(25, true),
				DoCollegeUpdate: true,
				College:         c.NewOptional("Test College", true),
			},
		},
		{
			id:             "null clears a profile field",
			body:           `{"about": null}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				DoAboutUpdate: true,
				About:         c.Optional[string]{},
			},
		},
		{
			id:             "unknown keys are ignored",
			body:           `{"name": "Janet", "role": "admin", "isActive": false}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				DoNameUpdate: true,
				Name:         "Janet",
			},
		},
		{
			id:             "password key is rejected",
			body:           `{"name": "Janet", "password": "sneaky"}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "passwordConfirm key is rejected",
			body:           `{"passwordConfirm": "sneaky"}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "null password key is still rejected",
			body:           `{"password": null}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "age below minimum",
			body:           `{"age": 10}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "malformed body",
			body:           `{"name": `,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			stub := newStubService()
			handler := New(stub)

			// Exercise ---
			request := httptest.NewRequest(http.MethodPatch, "/updateMe", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			// Verify ---
			require.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedInput == nil {
				assert.Nil(t, stub.input)
			} else {
				require.NotNil(t, stub.input)
				assert.Equal(t, *testcase.expectedInput, *stub.input)
			}
		})
	}
}

func TestUpdateUserHandlerEmailAlreadyExists(t *testing.T) {
	// Setup ---
	stub := newStubService()
	stub.err = user.ErrEmailAlreadyExists
	handler := New(stub)

	// Exercise ---
	request := httptest.NewRequest(
		http.MethodPatch,
		"/updateMe",
		strings.NewReader(`{"email": "taken@test.com"}`),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	// Verify ---
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
