package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AdityaANS/dsa-progress-tracker/internal/repository"
	"github.com/AdityaANS/dsa-progress-tracker/internal/service"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/database"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := database.OpenLocal(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	engine := service.NewSyncService(repository.NewLocalStore(db), nil, nil)
	engine.Initialize()

	c := NewProgressController(engine)
	router := gin.New()
	router.GET("/api/progress", c.GetProgress)
	router.POST("/api/topics", c.AddTopic)
	router.PATCH("/api/topics/:index/target", c.UpdateTarget)
	router.POST("/api/topics/:index/solves", c.RecordSolve)
	return router
}

func decodeSnapshot(t *testing.T, body []byte) service.ProgressSnapshot {
	t.Helper()

	var resp struct {
		Code int                      `json:"code"`
		Data service.ProgressSnapshot `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.Data
}

func TestGetProgressDefaults(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	snap := decodeSnapshot(t, w.Body.Bytes())
	if len(snap.Topics) != 8 || snap.TotalTarget != 160 {
		t.Errorf("unexpected default snapshot: %d topics, total %d", len(snap.Topics), snap.TotalTarget)
	}
}

func TestRecordSolveEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	form := strings.NewReader("problemName=Two+Sum&link=https%3A%2F%2Fleetcode.com")
	req := httptest.NewRequest(http.MethodPost, "/api/topics/0/solves", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	snap := decodeSnapshot(t, w.Body.Bytes())
	if snap.Topics[0].Solved != 1 {
		t.Errorf("expected one solve on Arrays, got %+v", snap.Topics[0])
	}
	if snap.Streak.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", snap.Streak.CurrentStreak)
	}
}

func TestRecordSolveBadIndex(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/topics/zero/solves", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric index, got %d", w.Code)
	}
}

func TestAddTopicEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/topics",
		strings.NewReader(`{"name":"Greedy","target":12}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	snap := decodeSnapshot(t, w.Body.Bytes())
	if len(snap.Topics) != 9 {
		t.Fatalf("expected 9 topics, got %d", len(snap.Topics))
	}

	// Engine-level no-op: empty name returns the unchanged snapshot.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/topics",
		strings.NewReader(`{"name":"","target":12}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if snap = decodeSnapshot(t, w.Body.Bytes()); len(snap.Topics) != 9 {
		t.Errorf("empty name should change nothing, got %d topics", len(snap.Topics))
	}
}

func TestUpdateTargetEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/topics/0/target",
		strings.NewReader(`{"target":40}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if snap := decodeSnapshot(t, w.Body.Bytes()); snap.Topics[0].Target != 40 {
		t.Errorf("expected target 40, got %+v", snap.Topics[0])
	}
}
