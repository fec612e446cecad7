package history

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ansh7432/MoodScope-Backend/logger"
)

func TestHistoryHandlerWithoutStore(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewHistoryHandler(log, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/history", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d when history is disabled", rr.Code, http.StatusServiceUnavailable)
	}
}
