package user_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"
	usererrors "github.com/saxena100parth/codriva-hrms-sub002/internal/user/errors"
	mock_user "github.com/saxena100parth/codriva-hrms-sub002/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

func TestUserHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with filter and pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_user.NewMockService(ctrl)
		svc.EXPECT().
			GetAll(gomock.Any(), user.Filter{OnboardingStatus: user.OnboardingSubmitted}).
			Return([]user.UserResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil)

		h := user.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users?onboarding_status=SUBMITTED&page=2&page_size=2", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []user.UserResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("negative service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_user.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		h := user.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestUserHandler_ChangeRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_user.NewMockService(ctrl)
		svc.EXPECT().
			ChangeRole(gomock.Any(), actorID, targetID, user.RoleHR).
			Return(user.UserResponse{ID: targetID, Role: user.RoleHR}, nil)

		h := user.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/users/"+targetID+"/role", strings.NewReader(`{"role":"HR"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: targetID}}
		c.Set("user_id_validated", actorID)

		h.ChangeRole(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := user.NewHandler(mock_user.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/users/x/role", strings.NewReader(`{"role":"OWNER"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ChangeRole(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative self demotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_user.NewMockService(ctrl)
		svc.EXPECT().
			ChangeRole(gomock.Any(), actorID, actorID, user.RoleEmployee).
			Return(user.UserResponse{}, usererrors.ErrCannotDemoteSelf)

		h := user.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/users/"+actorID+"/role", strings.NewReader(`{"role":"EMPLOYEE"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: actorID}}
		c.Set("user_id", actorID)

		h.ChangeRole(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})
}
