package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cloud-telephony-api/internal/application/ports"
	"cloud-telephony-api/internal/application/services"
	domain "cloud-telephony-api/internal/domain/user"
	userDB "cloud-telephony-api/internal/infrastructure/db/postgres/user"
	"cloud-telephony-api/internal/interface/api/rest/dto/auth"
)

type fakeAuthService struct {
	GenerateTokenFunc func(u *domain.User, password string) (string, error)
}

func (f *fakeAuthService) GenerateToken(u *domain.User, password string) (string, error) {
	return f.GenerateTokenFunc(u, password)
}

func setupAuthRouter(t *testing.T, us ports.UserService, as ports.Auth) (*gin.Engine, *AuthController) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ac := &AuthController{
		logger:      zap.NewNop(),
		userService: us,
		authService: as,
	}
	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	return r, ac
}

func validLogin() auth.LoginRequest {
	return auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "VeryStrongPassw0rd!",
	}
}

func validRegister() auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "VeryStrongPassw0rd!",
	}
}

func TestAuthController_RegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		createUser func(ctx context.Context, u domain.User, password string) (*domain.User, error)
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid JSON",
			body:       "{bad json",
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid json",
		},
		{
			name:       "400 validation error",
			body:       auth.RegisterRequest{Name: "", Email: "bad", Password: ""},
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "409 email already exists",
			body: validRegister(),
			createUser: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return nil, userDB.ErrEmailAlreadyExists
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "500 service error",
			body: validRegister(),
			createUser: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return nil, errors.New("db error")
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to register",
		},
		{
			name: "201 success",
			body: validRegister(),
			createUser: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "VeryStrongPassw0rd!", password)
				return someDomainUser(), nil
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			us := &FakeUserService{CreateUserFunc: tt.createUser}
			as := &fakeAuthService{}

			r, _ := setupAuthRouter(t, us, as)
			rr := doReq(t, r, http.MethodPost, RouteRegister, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestAuthController_RegisterHandler_NormalizesInput(t *testing.T) {
	var captured domain.User
	us := &FakeUserService{
		CreateUserFunc: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
			captured = u
			return someDomainUser(), nil
		},
	}

	r, _ := setupAuthRouter(t, us, &fakeAuthService{})
	rr := doReq(t, r, http.MethodPost, RouteRegister,
		auth.RegisterRequest{Name: " Alice Smith ", Email: " Alice@X.com ", Password: "VeryStrongPassw0rd!"}, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "alice@x.com", captured.Email)
	assert.Equal(t, "Alice Smith", captured.Name)
}

func TestAuthController_LoginHandler_NormalizesEmail(t *testing.T) {
	var captured string
	us := &FakeUserService{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			captured = email
			return someDomainUser(), nil
		},
	}
	as := &fakeAuthService{
		GenerateTokenFunc: func(u *domain.User, password string) (string, error) { return "tok_123", nil },
	}

	r, _ := setupAuthRouter(t, us, as)
	rr := doReq(t, r, http.MethodPost, RouteLogin,
		auth.LoginRequest{Email: " Alice@Example.COM ", Password: "VeryStrongPassw0rd!"}, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alice@example.com", captured)
}

func TestAuthController_LoginHandler(t *testing.T) {
	type fields struct {
		findByEmail   func(ctx context.Context, email string) (*domain.User, error)
		generateToken func(u *domain.User, password string) (string, error)
	}
	type want struct {
		code        int
		jsonEq      map[string]any
		jsonHasKeys []string
	}

	tests := []struct {
		name   string
		body   any
		fields fields
		want   want
	}{
		{
			name: "invalid JSON",
			body: "{bad json",
			want: want{
				code:        http.StatusBadRequest,
				jsonEq:      map[string]any{"error": "invalid json"},
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name: "validation error",
			body: auth.LoginRequest{Email: "not-an-email", Password: ""},
			want: want{
				code:        http.StatusBadRequest,
				jsonHasKeys: []string{"error", "details"},
			},
		},
		{
			name: "FindByEmail error -> 500",
			body: validLogin(),
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return nil, errors.New("db error")
				},
			},
			want: want{
				code:        http.StatusInternalServerError,
				jsonEq:      map[string]any{"error": "failed to get a user"},
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name: "user not found -> 404",
			body: validLogin(),
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) { return nil, nil },
			},
			want: want{
				code:        http.StatusNotFound,
				jsonEq:      map[string]any{"error": "user not found"},
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name: "wrong password -> 401",
			body: validLogin(),
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return someDomainUser(), nil
				},
				generateToken: func(u *domain.User, password string) (string, error) {
					return "", services.ErrInvalidCredentials
				},
			},
			want: want{
				code:        http.StatusUnauthorized,
				jsonEq:      map[string]any{"error": "invalid credentials"},
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name: "token generation failure -> 500",
			body: validLogin(),
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return someDomainUser(), nil
				},
				generateToken: func(u *domain.User, password string) (string, error) {
					return "", services.ErrFailedToGenerateToken
				},
			},
			want: want{
				code:        http.StatusInternalServerError,
				jsonEq:      map[string]any{"error": "failed to login"},
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name: "success",
			body: validLogin(),
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return someDomainUser(), nil
				},
				generateToken: func(u *domain.User, password string) (string, error) {
					return "tok_123", nil
				},
			},
			want: want{
				code:        http.StatusOK,
				jsonEq:      map[string]any{"access_token": "tok_123", "token_type": "Bearer"},
				jsonHasKeys: []string{"access_token", "token_type"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			us := &FakeUserService{FindByEmailFunc: tt.fields.findByEmail}
			as := &fakeAuthService{GenerateTokenFunc: tt.fields.generateToken}

			r, _ := setupAuthRouter(t, us, as)
			rr := doReq(t, r, http.MethodPost, RouteLogin, tt.body, nil)
			require.Equal(t, tt.want.code, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			for k, v := range tt.want.jsonEq {
				assert.Equal(t, v, resp[k], "field %q mismatch", k)
			}
			for _, k := range tt.want.jsonHasKeys {
				assert.Contains(t, resp, k, "expected key %q", k)
			}
		})
	}
}
