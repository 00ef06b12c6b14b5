package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader), "expected a generated trace ID in the response")
}

func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(traceIDHeader, "incoming-trace-id")

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, r)

	assert.Equal(t, "incoming-trace-id", rr.Header().Get(traceIDHeader))
}
