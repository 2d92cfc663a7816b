package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/pkg/auth"
)

func testRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := NewAuthMiddleware(jwtService)

	authed := router.Group("", m.JWTAuth())
	authed.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": GetUserID(c),
			"role":   GetRole(c),
		})
	})

	teacherOnly := authed.Group("", m.RoleRequired(models.RoleTeacher))
	teacherOnly.GET("/teacher-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "placementtrack-test",
	})
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	return accessToken
}

func TestJWTAuth(t *testing.T) {
	jwtService := newTestJWT()
	router := testRouter(jwtService)

	studentID := int64(5)
	studentToken := tokenFor(t, jwtService, &models.User{
		ID: 3, Email: "maija@example.com", Role: models.RoleStudent, StudentID: &studentID,
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing_header", "", http.StatusUnauthorized},
		{"garbage_token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid_token", "Bearer " + studentToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: time.Hour,
	})
	router := testRouter(newTestJWT())

	token := tokenFor(t, expiredService, &models.User{ID: 1, Email: "x@example.com", Role: models.RoleTeacher})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWT()
	router := testRouter(jwtService)

	teacherToken := tokenFor(t, jwtService, &models.User{ID: 1, Email: "ope@example.com", Role: models.RoleTeacher})
	studentID := int64(5)
	studentToken := tokenFor(t, jwtService, &models.User{ID: 2, Email: "maija@example.com", Role: models.RoleStudent, StudentID: &studentID})

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"teacher_allowed", teacherToken, http.StatusOK},
		{"student_forbidden", studentToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/teacher-only", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
