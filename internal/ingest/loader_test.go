package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderFetch(t *testing.T) {
	t.Run("ingests a served payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload(`en,p1,,,,,100,,,,,,1,1,,point`)))
		}))
		defer srv.Close()

		res, err := NewLoader(srv.URL, 5*time.Second).Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, res.RowCount)
	})

	t.Run("non-2xx response is a terminal load error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewLoader(srv.URL, 5*time.Second).Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("unreachable host is a terminal load error", func(t *testing.T) {
		_, err := NewLoader("http://127.0.0.1:1", time.Second).Fetch(context.Background())
		require.Error(t, err)
	})
}
