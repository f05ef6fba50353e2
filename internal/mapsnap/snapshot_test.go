package mapsnap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_FetchesImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "43.6487,-79.3817", r.URL.Query().Get("center"))
		assert.Equal(t, "520x280", r.URL.Query().Get("size"))
		assert.NotEmpty(t, r.URL.Query().Get("markers"))
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	s := NewHTTPSnapshotter(srv.URL, time.Second)
	data, err := s.Snapshot(context.Background(), 43.6487, -79.3817)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSnapshot_ErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewHTTPSnapshotter(srv.URL, time.Second)
	_, err := s.Snapshot(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSnapshot_ErrorOnEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	s := NewHTTPSnapshotter(srv.URL, time.Second)
	_, err := s.Snapshot(context.Background(), 1, 2)
	assert.Error(t, err)
}

func TestNoopSnapshotter(t *testing.T) {
	_, err := NoopSnapshotter{}.Snapshot(context.Background(), 1, 2)
	assert.Error(t, err)
}
