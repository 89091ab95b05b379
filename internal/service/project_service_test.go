package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energystats/factbook-backend-go/internal/database"
	"github.com/energystats/factbook-backend-go/internal/ingest"
	"github.com/energystats/factbook-backend-go/internal/models"
	"github.com/energystats/factbook-backend-go/internal/repository"
)

const testPayload = `lang,id,company,project_name,province,location,capital_cost,capital_cost_range,status,clean_technology,clean_technology_type,line_type,lat,lon,paths,type
en,p1,Acme,Wind Farm A,Alberta,Near Calgary,"1,200",1000-5000,Under Construction,Yes,Wind,,51.1,-114.0,,point
en,l1,GridCo,Line B,Quebec,,50,0-10,Planned,No,,transmission,,,"[[{""lat"":45.5,""lon"":-73.5},{""lat"":46.8,""lon"":-71.2}]]",line
fr,p1,Acme,Parc éolien A,Alberta,Près de Calgary,"1 200",1000-5000,En construction,Oui,Éolien,,51.1,-114.0,,point
`

// The database package keeps a process-wide connection, so every stage of
// the service lifecycle runs as an ordered subtest against one database.
func TestProjectServiceLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "projects.db")
	require.NoError(t, database.Init(database.Config{Path: dbPath}))
	repo := repository.NewProjectRepository(database.GetDB())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPayload))
	}))
	defer srv.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	t.Run("queries before any load report not loaded", func(t *testing.T) {
		s := NewProjectService(ingest.NewLoader(down.URL, time.Second), repo)
		err := s.Load(context.Background())
		require.Error(t, err, "empty cache cannot satisfy a failed fetch")

		_, err = s.Query(models.ProjectFilter{Locale: "en"})
		assert.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("successful load serves and caches the dataset", func(t *testing.T) {
		s := NewProjectService(ingest.NewLoader(srv.URL, time.Second), repo)
		require.NoError(t, s.Load(context.Background()))

		view, err := s.Query(models.ProjectFilter{Locale: "en"})
		require.NoError(t, err)
		assert.Len(t, view, 2)

		opts, err := s.Options("fr")
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme"}, opts.Companies)

		count, err := repo.Count()
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)
	})

	t.Run("fetch failure falls back to the cache", func(t *testing.T) {
		s := NewProjectService(ingest.NewLoader(down.URL, time.Second), repo)
		require.NoError(t, s.Load(context.Background()))

		view, err := s.Query(models.ProjectFilter{Locale: "en", Status: models.StatusPlanned})
		require.NoError(t, err)
		require.Len(t, view, 1)
		assert.Equal(t, "Line B", view[0].ProjectName)
	})

	t.Run("failed reload keeps the current dataset", func(t *testing.T) {
		s := NewProjectService(ingest.NewLoader(srv.URL, time.Second), repo)
		require.NoError(t, s.Load(context.Background()))

		s.loader = ingest.NewLoader(down.URL, time.Second)
		_, _, err := s.Reload(context.Background())
		require.Error(t, err)

		view, err := s.Query(models.ProjectFilter{Locale: "en"})
		require.NoError(t, err)
		assert.Len(t, view, 2)
	})

	t.Run("map payload splits overlays and computes bounds", func(t *testing.T) {
		s := NewProjectService(ingest.NewLoader(srv.URL, time.Second), repo)
		require.NoError(t, s.Load(context.Background()))

		mv, err := s.Map(models.ProjectFilter{Locale: "en"})
		require.NoError(t, err)
		require.Len(t, mv.Points, 1)
		require.Len(t, mv.Lines, 1)
		assert.Greater(t, mv.Lines[0].LengthKm, 100.0)
		require.NotNil(t, mv.Bounds)
		assert.InDelta(t, 45.5, mv.Bounds.MinLat, 1e-6)
	})

	t.Run("unknown locales fall back to english", func(t *testing.T) {
		s := NewProjectService(ingest.NewLoader(srv.URL, time.Second), repo)
		require.NoError(t, s.Load(context.Background()))

		view, err := s.Query(models.ProjectFilter{Locale: "de"})
		require.NoError(t, err)
		assert.Len(t, view, 2)
	})

	t.Run("document table carries localized headings", func(t *testing.T) {
		s := NewProjectService(ingest.NewLoader(srv.URL, time.Second), repo)
		require.NoError(t, s.Load(context.Background()))

		doc, err := s.Document(models.ProjectFilter{Locale: "fr"})
		require.NoError(t, err)
		assert.Equal(t, "Grands projets énergétiques", doc.Title)
		require.Len(t, doc.Rows, 1)
		assert.Equal(t, "Parc éolien A", doc.Rows[0][0].Text)
	})
}
