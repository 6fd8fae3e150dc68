// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/polls", "/polls"},
		{"/polls/12", "/polls/{id}"},
		{"/polls/", "/polls"},
		{"/health", "/health"},
		{"/polls/12", "/polls/{id}"},
		{"/polls/12/vote", "/polls/{id}/vote"},
		{"/polls/12/results", "/polls/{id}/results"},
		{"/polls/12/options", "/polls/{id}/options"},
		{"/polls/12/options/5", "/polls/{id}/options/{id}"},
		{"/polls/abc/results", "/polls/{id}/results"},
		{"/polls//options", "other"},
		{"/polls/12/ballots", "other"},
		{"/x42", "other"},
		{"/polls/1/options/2/extra", "other"},
	}

	for _, tt := range tests {
		if got := canonicalPath(tt.in); got != tt.want {
			t.Errorf("canonicalPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInstrumentHandlerCountsRequests(t *testing.T) {
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/polls/{id}", "404"))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/polls/99", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/polls/{id}", "404"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}
}

func TestInstrumentHandlerBoundsPathLabels(t *testing.T) {
	h := InstrumentHandler(http.NotFoundHandler())

	before := testutil.CollectAndCount(httpRequests)
	for i := 0; i < 200; i++ {
		n := strconv.Itoa(i)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/x"+n, nil))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/polls/abc"+n, nil))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("PURGE"+n, "/polls", nil))
	}
	after := testutil.CollectAndCount(httpRequests)

	// at most: GET other 404, GET /polls/{id} 404, OTHER /polls 404
	if grown := after - before; grown > 3 {
		t.Errorf("expected at most 3 new series, got %d", grown)
	}
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "other", "404")); got < 200 {
		t.Errorf("expected unrouted requests under other, got %v", got)
	}
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(votesCast)
	VoteCast()
	VoteCast()
	if got := testutil.ToFloat64(votesCast) - before; got != 2 {
		t.Errorf("expected 2 votes counted, got %v", got)
	}

	StoreError("")
	if got := testutil.ToFloat64(storeErrors.WithLabelValues("unknown")); got < 1 {
		t.Errorf("expected unknown operation to be counted, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	PollCreated()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "quickpoll_polls_created_total") {
		t.Error("expected polls counter in exposition output")
	}
}
