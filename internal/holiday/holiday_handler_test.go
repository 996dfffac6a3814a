package holiday_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/holiday"
	holidayerrors "github.com/saxena100parth/codriva-hrms-sub002/internal/holiday/errors"
	holidayMock "github.com/saxena100parth/codriva-hrms-sub002/internal/holiday/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupHolidayHandler(t *testing.T) (*holidayMock.MockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := holidayMock.NewMockService(ctrl)
	h := holiday.NewHandler(svc)

	r := gin.New()
	r.GET("/holidays", h.List)
	r.POST("/holidays", h.Create)
	r.DELETE("/holidays/:id", h.Delete)
	r.POST("/holidays/bulk-copy", h.BulkCopy)
	return svc, r
}

func TestHandler_List(t *testing.T) {
	svc, r := setupHolidayHandler(t)

	t.Run("year from query", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), 2027).Return([]holiday.HolidayResponse{{ID: "h1", Date: "2027-01-01"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/holidays?year=2027", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad year", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/holidays?year=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		_ = json.Unmarshal(w.Body.Bytes(), &env)
		assert.Equal(t, holidayerrors.ErrInvalidYear.Code, env.Error.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	svc, r := setupHolidayHandler(t)

	t.Run("created", func(t *testing.T) {
		req := holiday.CreateHolidayRequest{Date: "2026-12-25", Name: "Christmas"}
		svc.EXPECT().Create(gomock.Any(), req).Return(holiday.HolidayResponse{ID: "h1", Date: req.Date, Name: req.Name}, nil)

		body, _ := json.Marshal(req)
		httpReq := httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(holiday.HolidayResponse{}, holidayerrors.ErrDuplicateDate)

		httpReq := httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewBufferString(`{"date":"2026-12-25","name":"X"}`))
		httpReq.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid date format", func(t *testing.T) {
		httpReq := httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewBufferString(`{"date":"25/12/2026","name":"X"}`))
		httpReq.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_BulkCopy(t *testing.T) {
	svc, r := setupHolidayHandler(t)
	svc.EXPECT().
		BulkCopy(gomock.Any(), holiday.BulkCopyRequest{FromYear: 2026, ToYear: 2027}).
		Return(holiday.BulkCopyResponse{
			Created: []holiday.HolidayResponse{{ID: "h1"}},
			Failed:  []holiday.BulkCopyFailure{{Name: "Leap", Date: "2027-02-29", Reason: "date does not exist in target year"}},
		}, nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/holidays/bulk-copy", bytes.NewBufferString(`{"from_year":2026,"to_year":2027}`))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data holiday.BulkCopyResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Failed, 1)
}
