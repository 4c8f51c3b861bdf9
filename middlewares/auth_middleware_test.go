package middlewares

import (
	"context"
	"ecommerce-backend/constants"
	"ecommerce-backend/dto"
	"ecommerce-backend/services"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	userID string
	err    error
}

func (s *stubAuthService) Signup(ctx context.Context, input dto.SignupInput) (string, error) {
	return "", nil
}

func (s *stubAuthService) Login(ctx context.Context, email string, password string) (string, error) {
	return "", nil
}

func (s *stubAuthService) ParseToken(tokenString string) (string, error) {
	return s.userID, s.err
}

func newTestRouter(authService services.IAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", AuthMiddleware(authService), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(UserIDKey))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		service    *stubAuthService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing token",
			service:    &stubAuthService{userID: "u1"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"errors":"` + constants.ErrAuthenticationRequired + `"}`,
		},
		{
			name:       "invalid token",
			token:      "garbage",
			service:    &stubAuthService{err: services.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"errors":"` + constants.ErrInvalidToken + `"}`,
		},
		{
			name:       "valid token",
			token:      "good",
			service:    &stubAuthService{userID: "u1"},
			wantStatus: http.StatusOK,
			wantBody:   "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.service)
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tt.token != "" {
				req.Header.Set(constants.AuthTokenHeader, tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}
