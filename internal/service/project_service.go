package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/energystats/factbook-backend-go/internal/engine"
	"github.com/energystats/factbook-backend-go/internal/export"
	"github.com/energystats/factbook-backend-go/internal/i18n"
	"github.com/energystats/factbook-backend-go/internal/ingest"
	"github.com/energystats/factbook-backend-go/internal/models"
	"github.com/energystats/factbook-backend-go/internal/repository"
	"github.com/energystats/factbook-backend-go/internal/spatial"
	"github.com/energystats/factbook-backend-go/internal/stats"
)

// ErrNotLoaded is returned while no dataset is available: the initial fetch
// failed and the cache was empty. There is no automatic retry; an explicit
// reload is required.
var ErrNotLoaded = errors.New("projects dataset not loaded")

// ProjectService owns the immutable in-memory dataset and answers every
// query by running the pure filter engine over it. The dataset pointer is
// only swapped wholesale, on startup and on explicit reload.
type ProjectService struct {
	loader *ingest.Loader
	repo   *repository.ProjectRepository

	mu        sync.RWMutex
	dataset   models.Dataset
	malformed []models.MalformedRow
}

// NewProjectService creates a new project service
func NewProjectService(loader *ingest.Loader, repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{loader: loader, repo: repo}
}

// Load fetches and ingests the dataset. On fetch failure it falls back to
// the repository cache; if both fail the service stays in the not-loaded
// state and queries return ErrNotLoaded.
func (s *ProjectService) Load(ctx context.Context) error {
	res, err := s.loader.Fetch(ctx)
	if err != nil {
		log.Printf("Dataset fetch failed, trying cache: %v", err)
		cached, cacheErr := s.repo.LoadAll()
		if cacheErr != nil || len(cached) == 0 {
			return err
		}
		s.swap(cached, nil)
		return nil
	}

	s.swap(res.Dataset, res.Malformed)
	if err := s.repo.ReplaceAll(res.Dataset); err != nil {
		// The in-memory dataset is good; a stale cache only matters on
		// the next cold start.
		log.Printf("Failed to cache dataset: %v", err)
	}
	if len(res.Malformed) > 0 {
		log.Printf("Ingested %d rows, %d malformed", res.RowCount, len(res.Malformed))
	}
	return nil
}

// Reload re-fetches the asset and swaps the dataset. Unlike Load it does
// not fall back to the cache: a failed reload keeps the current dataset.
func (s *ProjectService) Reload(ctx context.Context) (int, []models.MalformedRow, error) {
	res, err := s.loader.Fetch(ctx)
	if err != nil {
		return 0, nil, err
	}
	s.swap(res.Dataset, res.Malformed)
	if err := s.repo.ReplaceAll(res.Dataset); err != nil {
		log.Printf("Failed to cache dataset: %v", err)
	}
	return res.RowCount, res.Malformed, nil
}

func (s *ProjectService) swap(ds models.Dataset, malformed []models.MalformedRow) {
	s.mu.Lock()
	s.dataset = ds
	s.malformed = malformed
	s.mu.Unlock()
}

// Records returns the full record set for a locale, points then lines.
func (s *ProjectService) Records(locale string) ([]models.ProjectRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, ErrNotLoaded
	}
	part, ok := s.dataset[normalizeLocale(locale)]
	if !ok {
		return nil, nil
	}
	return part.All(), nil
}

// Malformed returns the rows rejected by the last ingestion.
func (s *ProjectService) Malformed() []models.MalformedRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.malformed
}

// Query applies the filter state and returns the ordered view.
func (s *ProjectService) Query(f models.ProjectFilter) ([]models.ProjectRecord, error) {
	records, err := s.Records(f.Locale)
	if err != nil {
		return nil, err
	}
	return engine.Apply(records, f), nil
}

// Options returns the distinct-value menus for a locale.
func (s *ProjectService) Options(locale string) (models.FilterOptions, error) {
	records, err := s.Records(locale)
	if err != nil {
		return models.FilterOptions{}, err
	}
	return engine.Options(records, normalizeLocale(locale)), nil
}

// ExportCSV serializes the filtered view as a downloadable CSV blob.
func (s *ProjectService) ExportCSV(f models.ProjectFilter) (string, error) {
	view, err := s.Query(f)
	if err != nil {
		return "", err
	}
	return export.WriteCSV(view), nil
}

// Document shapes the filtered view into the declarative table handed to
// the document-generation collaborator, with localized headings.
func (s *ProjectService) Document(f models.ProjectFilter) (export.DocumentTable, error) {
	view, err := s.Query(f)
	if err != nil {
		return export.DocumentTable{}, err
	}
	locale := normalizeLocale(f.Locale)
	columns := []string{
		i18n.GetText("col_project", locale),
		i18n.GetText("col_company", locale),
		i18n.GetText("col_province", locale),
		i18n.GetText("col_location", locale),
		i18n.GetText("col_capital_cost", locale),
		i18n.GetText("col_status", locale),
		i18n.GetText("col_clean_tech", locale),
		i18n.GetText("col_clean_tech_type", locale),
	}
	return export.BuildDocumentTable(i18n.GetText("export_title", locale), columns, view), nil
}

// Summary aggregates the filtered view for the page's headline numbers.
type Summary struct {
	Total             int     `json:"total"`
	Planned           int     `json:"planned"`
	UnderConstruction int     `json:"underConstruction"`
	CleanTech         int     `json:"cleanTech"`
	TotalCost         float64 `json:"totalCost"` // millions
	MeanCost          float64 `json:"meanCost"`
	MedianCost        float64 `json:"medianCost"`
	P90Cost           float64 `json:"p90Cost"`
}

// Summarize computes headline aggregates over the filtered view.
func (s *ProjectService) Summarize(f models.ProjectFilter) (Summary, error) {
	view, err := s.Query(f)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Total: len(view)}
	costs := make([]float64, 0, len(view))
	for i := range view {
		rec := &view[i]
		costs = append(costs, rec.CapitalCost)
		if engine.MatchesStatus(rec.Status, models.StatusPlanned) {
			sum.Planned++
		}
		if engine.MatchesStatus(rec.Status, models.StatusUnderConstruction) {
			sum.UnderConstruction++
		}
		if engine.IsCleanTechYes(rec.CleanTechnology) {
			sum.CleanTech++
		}
	}
	sum.TotalCost = stats.Sum(costs)
	sum.MeanCost = stats.Mean(costs)
	sum.MedianCost = stats.Percentile(costs, 50)
	sum.P90Cost = stats.Percentile(costs, 90)
	return sum, nil
}

// MapPoint is one point project prepared for the map overlay.
type MapPoint struct {
	Record models.ProjectRecord `json:"record"`
}

// MapLine is one line project with its computed polyline length.
type MapLine struct {
	Record   models.ProjectRecord `json:"record"`
	LengthKm float64              `json:"lengthKm"`
}

// MapView is the payload driving the map: filtered overlays plus the
// bounding box for viewport fitting.
type MapView struct {
	Points []MapPoint      `json:"points"`
	Lines  []MapLine       `json:"lines"`
	Bounds *spatial.Bounds `json:"bounds,omitempty"`
}

// Map builds the map payload for the filtered view.
func (s *ProjectService) Map(f models.ProjectFilter) (MapView, error) {
	view, err := s.Query(f)
	if err != nil {
		return MapView{}, err
	}

	mv := MapView{Points: []MapPoint{}, Lines: []MapLine{}}
	for i := range view {
		rec := view[i]
		if rec.IsLine() {
			mv.Lines = append(mv.Lines, MapLine{
				Record:   rec,
				LengthKm: spatial.PathLengthKm(rec.Paths),
			})
		} else {
			mv.Points = append(mv.Points, MapPoint{Record: rec})
		}
	}
	if bounds, ok := spatial.DatasetBounds(view); ok {
		mv.Bounds = &bounds
	}
	return mv, nil
}

// normalizeLocale maps unknown locales to English, the dataset's primary
// partition.
func normalizeLocale(locale string) string {
	if locale == "fr" {
		return "fr"
	}
	return "en"
}
