package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tallerlima/internal/database"
	"tallerlima/internal/domain"
	"tallerlima/internal/middleware"
	"tallerlima/internal/modules/auth"
	"tallerlima/internal/modules/catalog"
	"tallerlima/internal/modules/stats"
	"tallerlima/internal/modules/users"
	jwtsvc "tallerlima/internal/pkg/jwt"
	"tallerlima/internal/repository"
)

type env struct {
	router       *gin.Engine
	superAdminID string
}

func setup(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Workshop{},
		&domain.EngineRectifier{},
		&domain.Address{},
		&domain.Contact{},
	))

	userRepo := repository.NewUserRepository(db)
	workshopRepo := repository.NewCatalogRepository[domain.Workshop, *domain.Workshop](db, repository.CatalogConfig{
		Table:    "workshops",
		OwnerKey: "workshop_id",
	})
	rectifierRepo := repository.NewCatalogRepository[domain.EngineRectifier, *domain.EngineRectifier](db, repository.CatalogConfig{
		Table:    "engine_rectifiers",
		OwnerKey: "rectifier_id",
	})

	j := jwtsvc.New("e2e-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	workshopService := catalog.NewService(workshopRepo, catalog.Workshops())
	workshopHandler := catalog.NewHandler(workshopService)
	rectifierService := catalog.NewService(rectifierRepo, catalog.Rectifiers())
	rectifierHandler := catalog.NewHandler(rectifierService)
	userHandler := users.NewHandler(users.NewService(userRepo))
	statsHandler := stats.NewHandler(workshopService, rectifierService, userRepo)

	r := gin.New()
	v1 := r.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))
	authHandler.RegisterProtectedRoutes(protected)
	workshopHandler.RegisterRoutes(protected)
	rectifierHandler.RegisterRoutes(protected)
	statsHandler.RegisterRoutes(protected)

	admin := protected.Group("/")
	admin.Use(middleware.SuperAdminOnly())
	userHandler.RegisterRoutes(admin)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	superAdmin := &domain.User{
		Email:        "oficina@taller.pe",
		PasswordHash: string(hash),
		Role:         domain.RoleSuperAdmin,
	}
	require.NoError(t, db.Create(superAdmin).Error)

	plain := &domain.User{
		Email:        "usuario@taller.pe",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	require.NoError(t, db.Create(plain).Error)

	return &env{router: r, superAdminID: superAdmin.ID}
}

func (e *env) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func (e *env) login(t *testing.T, email, password string) string {
	t.Helper()
	w, body := e.do(t, "POST", "/api/v1/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	e := setup(t)

	for _, path := range []string{"/api/v1/workshops", "/api/v1/rectifiers", "/api/v1/users", "/api/v1/stats", "/api/v1/auth/me"} {
		w, _ := e.do(t, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginAndMe(t *testing.T) {
	e := setup(t)

	w, _ := e.do(t, "POST", "/api/v1/auth/login", "", gin.H{"email": "oficina@taller.pe", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")

	token := e.login(t, "oficina@taller.pe", "admin123")
	w, body := e.do(t, "GET", "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "oficina@taller.pe", body["email"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestWorkshopLifecycle(t *testing.T) {
	e := setup(t)
	token := e.login(t, "oficina@taller.pe", "admin123")

	w, body := e.do(t, "POST", "/api/v1/workshops", token, gin.H{
		"name": "Test Taller",
		"type": "MECANICO",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	assert.Nil(t, body["address"])
	assert.Nil(t, body["contact"])

	w, body = e.do(t, "PATCH", "/api/v1/workshops/"+id, token, gin.H{
		"address": gin.H{"district": "Lince"},
		"contact": gin.H{"whatsapp": "+51 999 888 777"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, body = e.do(t, "GET", "/api/v1/workshops/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	address, ok := body["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Lince", address["district"])
	assert.Equal(t, "Lima", address["province"])
	contact, ok := body["contact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "+51 999 888 777", contact["whatsapp"])

	w, body = e.do(t, "GET", "/api/v1/workshops?district=lince&checked=false", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data, _ := body["data"].([]any)
	assert.Len(t, data, 1)

	w, _ = e.do(t, "DELETE", "/api/v1/workshops/"+id, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = e.do(t, "GET", "/api/v1/workshops/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkshopListClampsPagination(t *testing.T) {
	e := setup(t)
	token := e.login(t, "oficina@taller.pe", "admin123")

	_, _ = e.do(t, "POST", "/api/v1/workshops", token, gin.H{"name": "Solo", "type": "MECANICO"})

	w, body := e.do(t, "GET", "/api/v1/workshops?page=0&limit=-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, pagination["page"])
	assert.EqualValues(t, 10, pagination["limit"])
	assert.EqualValues(t, 1, pagination["total"])
	assert.EqualValues(t, 1, pagination["totalPages"])

	data, _ := body["data"].([]any)
	assert.Len(t, data, 1)
}

func TestRectifierLifecycle(t *testing.T) {
	e := setup(t)
	token := e.login(t, "oficina@taller.pe", "admin123")

	w, body := e.do(t, "POST", "/api/v1/rectifiers", token, gin.H{
		"name":        "Rectificadora Norte",
		"type":        "RECTIFICADORA",
		"specialties": []string{"cigüeñales"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)

	w, _ = e.do(t, "POST", "/api/v1/rectifiers", token, gin.H{
		"name": "Tipo Malo",
		"type": "MECANICO",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")

	w, body = e.do(t, "GET", "/api/v1/rectifiers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data, _ := body["data"].([]any)
	assert.Len(t, data, 1)
}

func TestUserManagementGuards(t *testing.T) {
	e := setup(t)
	adminToken := e.login(t, "oficina@taller.pe", "admin123")
	userToken := e.login(t, "usuario@taller.pe", "admin123")

	// Non super admins never reach the user surface.
	w, _ := e.do(t, "GET", "/api/v1/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body := e.do(t, "POST", "/api/v1/users", adminToken, gin.H{
		"email":    "editor@taller.pe",
		"password": "secreto1",
		"role":     "ADMIN",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	newID, _ := body["id"].(string)
	require.NotEmpty(t, newID)

	w, _ = e.do(t, "POST", "/api/v1/users", adminToken, gin.H{
		"email":    "editor@taller.pe",
		"password": "secreto2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")

	// A malformed email never reaches the store, on update as on create.
	w, _ = e.do(t, "PATCH", "/api/v1/users/"+newID, adminToken, gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, body = e.do(t, "GET", "/api/v1/users/"+newID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "editor@taller.pe", body["email"])

	// Self-deletion is rejected, the account survives.
	w, _ = e.do(t, "DELETE", "/api/v1/users/"+e.superAdminID, adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = e.do(t, "GET", "/api/v1/users/"+e.superAdminID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = e.do(t, "DELETE", "/api/v1/users/"+newID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStats(t *testing.T) {
	e := setup(t)
	token := e.login(t, "oficina@taller.pe", "admin123")

	_, _ = e.do(t, "POST", "/api/v1/workshops", token, gin.H{"name": "A", "type": "MECANICO", "checked": true})
	_, _ = e.do(t, "POST", "/api/v1/workshops", token, gin.H{"name": "B", "type": "OTRO"})

	w, body := e.do(t, "GET", "/api/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	workshops, ok := body["workshops"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, workshops["total"])
	assert.EqualValues(t, 1, workshops["checked"])
	usersStats, ok := body["users"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, usersStats["total"])
}
