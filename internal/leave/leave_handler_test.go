package leave_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/domain"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/leave"
	leaveerrors "github.com/saxena100parth/codriva-hrms-sub002/internal/leave/errors"
	leaveMock "github.com/saxena100parth/codriva-hrms-sub002/internal/leave/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

type roleEnforcer map[string]bool

func (r roleEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	return r[req.Role+":"+req.Resource+":"+req.Action], nil
}

const (
	testActorID = "5f0e1a8c-3b1d-4c4e-9a57-0c1f2d3e4a5b"
	testLeaveID = "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

func setupLeaveHandler(t *testing.T, role string) (*leaveMock.MockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	h := leave.NewHandler(svc, roleEnforcer{"HR:leave:read_all": true})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id_validated", testActorID)
		c.Set("role", role)
		c.Next()
	})
	r.POST("/leaves", h.Apply)
	r.GET("/leaves", h.GetAll)
	r.GET("/leaves/export", h.Export)
	r.GET("/leaves/balance", h.MyBalance)
	r.PUT("/leaves/balance/:user_id", h.SetBalance)
	r.GET("/leaves/:id", h.GetByID)
	r.PATCH("/leaves/:id/decision", h.Decide)
	r.POST("/leaves/:id/cancel", h.Cancel)
	return svc, r
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Apply(t *testing.T) {
	svc, r := setupLeaveHandler(t, "EMPLOYEE")

	t.Run("created", func(t *testing.T) {
		req := leave.ApplyLeaveRequest{LeaveType: "annual", StartDate: "2030-03-04", EndDate: "2030-03-06"}
		svc.EXPECT().Apply(gomock.Any(), testActorID, req).
			Return(leave.LeaveResponse{ID: testLeaveID, Status: leave.StatusPending, NumberOfDays: 3}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/leaves", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeEnvelope(t, w).Ok)
	})

	t.Run("invalid leave type", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/leaves", map[string]string{
			"leave_type": "unpaid", "start_date": "2030-03-04", "end_date": "2030-03-06",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		svc.EXPECT().Apply(gomock.Any(), testActorID, gomock.Any()).Return(leave.LeaveResponse{}, leaveerrors.ErrInsufficientBalance)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/leaves", leave.ApplyLeaveRequest{
			LeaveType: "annual", StartDate: "2030-03-04", EndDate: "2030-03-06",
		}))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, leaveerrors.ErrInsufficientBalance.Code, decodeEnvelope(t, w).Error.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	t.Run("employee cannot read all", func(t *testing.T) {
		svc, r := setupLeaveHandler(t, "EMPLOYEE")
		svc.EXPECT().GetAll(gomock.Any(), testActorID, false, leave.Filter{Status: leave.StatusPending}).
			Return([]leave.LeaveResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves?status=PENDING&page=2&page_size=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var items []leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &items))
		assert.Len(t, items, 1)
	})

	t.Run("hr reads all", func(t *testing.T) {
		svc, r := setupLeaveHandler(t, "HR")
		svc.EXPECT().GetAll(gomock.Any(), testActorID, true, gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad status filter", func(t *testing.T) {
		_, r := setupLeaveHandler(t, "HR")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves?status=DONE", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Decide(t *testing.T) {
	svc, r := setupLeaveHandler(t, "HR")

	t.Run("approved", func(t *testing.T) {
		req := leave.DecideLeaveRequest{Status: leave.StatusApproved}
		svc.EXPECT().Decide(gomock.Any(), testActorID, testLeaveID, req).
			Return(leave.LeaveResponse{ID: testLeaveID, Status: leave.StatusApproved}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/leaves/"+testLeaveID+"/decision", req))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("self decision forbidden", func(t *testing.T) {
		svc.EXPECT().Decide(gomock.Any(), testActorID, testLeaveID, gomock.Any()).
			Return(leave.LeaveResponse{}, leaveerrors.ErrSelfDecision)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/leaves/"+testLeaveID+"/decision", leave.DecideLeaveRequest{Status: leave.StatusApproved}))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/leaves/"+testLeaveID+"/decision", map[string]string{"status": "MAYBE"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Cancel(t *testing.T) {
	svc, r := setupLeaveHandler(t, "EMPLOYEE")

	svc.EXPECT().Cancel(gomock.Any(), testActorID, testLeaveID).Return(leave.LeaveResponse{}, leaveerrors.ErrCannotCancelStarted)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/"+testLeaveID+"/cancel", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, leaveerrors.ErrCannotCancelStarted.Code, decodeEnvelope(t, w).Error.Code)
}

func TestHandler_Balance(t *testing.T) {
	svc, r := setupLeaveHandler(t, "HR")

	t.Run("my balance", func(t *testing.T) {
		svc.EXPECT().GetBalance(gomock.Any(), testActorID).Return(leave.BalanceResponse{
			UserID:   testActorID,
			Balances: []leave.BalanceItem{{LeaveType: "annual", Balance: 18, Taken: 3, Available: 15}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/balance", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("set balance requires value", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPut, "/leaves/balance/"+testActorID, map[string]string{"leave_type": "annual"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Export(t *testing.T) {
	svc, r := setupLeaveHandler(t, "HR")
	svc.EXPECT().Export(gomock.Any(), leave.Filter{LeaveType: "sick"}).Return([]byte("PKxlsx"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/export?leave_type=sick", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}
