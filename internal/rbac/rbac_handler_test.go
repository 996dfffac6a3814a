package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/domain"
	rbacMock "github.com/saxena100parth/codriva-hrms-sub002/internal/rbac/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// =========================================
// Mock Service
// =========================================

type mockService struct {
	authorizeArgs []string
}

func (m *mockService) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Role == "HR" && req.Resource == "leave" && req.Action == "approve", nil
}

func (m *mockService) Authorize(role, actorID, ownerID, resource, action string) (bool, error) {
	m.authorizeArgs = []string{role, actorID, ownerID, resource, action}
	return actorID == ownerID, nil
}

func (m *mockService) Permissions(role string) ([]domain.PermissionResponse, error) {
	return []domain.PermissionResponse{{Resource: "leave", Action: "create", Label: "Apply for leave"}}, nil
}

func newTestRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(service)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id_validated", "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
		c.Set("role", "EMPLOYEE")
		c.Next()
	})
	router.POST("/rbac/enforce", handler.Enforce)
	router.POST("/rbac/check", handler.Check)
	router.GET("/rbac/permissions", handler.MyPermissions)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =========================================
// TEST: Handler Enforce
// =========================================

func TestHandler_Enforce(t *testing.T) {
	router := newTestRouter(&mockService{})

	w := postJSON(router, "/rbac/enforce", domain.EnforceRequest{Role: " hr ", Resource: "leave", Action: "approve"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)

	w = postJSON(router, "/rbac/enforce", map[string]string{"resource": "leave"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =========================================
// TEST: Handler Check
// =========================================

func TestHandler_Check(t *testing.T) {
	service := &mockService{}
	router := newTestRouter(service)

	w := postJSON(router, "/rbac/check", CheckRequest{
		Resource: "user",
		Action:   "read",
		OwnerID:  "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)
	assert.Equal(t, "EMPLOYEE", service.authorizeArgs[0])

	w = postJSON(router, "/rbac/check", CheckRequest{Resource: "user", Action: "read", OwnerID: "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =========================================
// TEST: Handler MyPermissions
// =========================================

func TestHandler_MyPermissions(t *testing.T) {
	router := newTestRouter(&mockService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/rbac/permissions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"EMPLOYEE"`)
	assert.Contains(t, w.Body.String(), "Apply for leave")
}

// =========================================
// TEST: Routes gated by rbac capability
// =========================================

func TestRegisterRoutes_EnforceRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	service := rbacMock.NewMockService(ctrl)

	service.EXPECT().
		Enforce(domain.EnforceRequest{Role: "HR", Resource: "rbac", Action: "enforce"}).
		Return(false, nil)

	fakeAuth := func(c *gin.Context) {
		c.Set("user_id", "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
		c.Set("role", "HR")
		c.Next()
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), NewHandler(service), service, fakeAuth, zap.NewNop())

	w := postJSON(router, "/api/v1/rbac/enforce", domain.EnforceRequest{Role: "ADMIN", Resource: "user", Action: "change_role"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
