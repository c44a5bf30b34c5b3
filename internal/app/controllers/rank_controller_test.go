package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
)

type stubGlobalRankCounter struct {
	count int64
}

func (s *stubGlobalRankCounter) CountByRank(_ context.Context, _ int, _ *int64) (int64, error) {
	return s.count, nil
}

type stubScopedRankCounter struct {
	count int64
}

func (s *stubScopedRankCounter) CountByRank(_ context.Context, _ int64, _ int, _ *int64) (int64, error) {
	return s.count, nil
}

func rankTestRouter(categories *stubGlobalRankCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewRankService(categories, &stubScopedRankCounter{}, &stubScopedRankCounter{})
	router := gin.New()
	router.GET("/ranks/check", NewRankController(svc).CheckRank)
	return router
}

func TestCheckRankTypeParam(t *testing.T) {
	router := rankTestRouter(&stubGlobalRankCounter{count: 0})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ranks/check?type=category&rank=3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":true`)
}

func TestCheckRankTaken(t *testing.T) {
	router := rankTestRouter(&stubGlobalRankCounter{count: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ranks/check?type=category&rank=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":false`)
}

func TestCheckRankScopedWithoutScope(t *testing.T) {
	router := rankTestRouter(&stubGlobalRankCounter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ranks/check?type=subcategory&rank=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckRankUnknownType(t *testing.T) {
	router := rankTestRouter(&stubGlobalRankCounter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ranks/check?type=chapter&rank=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckRankNonNumericRank(t *testing.T) {
	router := rankTestRouter(&stubGlobalRankCounter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ranks/check?type=category&rank=first", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
