package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/energystats/factbook-backend-go/internal/database"
	"github.com/energystats/factbook-backend-go/internal/models"
)

// ProjectRepository caches the last successfully ingested dataset so the
// server can come up when the upstream asset is unreachable.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ReplaceAll swaps the cached dataset for a fresh one in a single
// transaction, preserving ingestion order via the seq column.
func (r *ProjectRepository) ReplaceAll(ds models.Dataset) error {
	return database.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM projects"); err != nil {
			return fmt.Errorf("failed to clear projects: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO projects
			(record_id, lang, kind, company, project_name, province, location,
			 capital_cost, capital_cost_raw, capital_cost_range, status,
			 clean_technology, clean_technology_type, lat, lon, line_type, paths)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, part := range ds {
			for i := range part.Points {
				if err := insertRecord(stmt, &part.Points[i]); err != nil {
					return err
				}
			}
			for i := range part.Lines {
				if err := insertRecord(stmt, &part.Lines[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func insertRecord(stmt *sql.Stmt, rec *models.ProjectRecord) error {
	var paths string
	if rec.IsLine() {
		encoded, err := json.Marshal(rec.Paths)
		if err != nil {
			return fmt.Errorf("failed to encode paths for %s: %w", rec.ID, err)
		}
		paths = string(encoded)
	}

	_, err := stmt.Exec(
		rec.ID, rec.Locale, string(rec.Kind), rec.Company, rec.ProjectName,
		rec.Province, rec.Location, rec.CapitalCost, rec.CapitalCostRaw,
		rec.CapitalCostRange, rec.Status, rec.CleanTechnology,
		rec.CleanTechnologyType, rec.Lat, rec.Lon, rec.LineType, paths,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record %s: %w", rec.ID, err)
	}
	return nil
}

// LoadAll reads the cached dataset back, partitioned by locale, in
// ingestion order.
func (r *ProjectRepository) LoadAll() (models.Dataset, error) {
	rows, err := r.db.Query(`SELECT record_id, lang, kind, company, project_name,
		province, location, capital_cost, capital_cost_raw, capital_cost_range,
		status, clean_technology, clean_technology_type, lat, lon, line_type, paths
		FROM projects ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	ds := models.Dataset{}
	for rows.Next() {
		var rec models.ProjectRecord
		var kind, paths string
		err := rows.Scan(
			&rec.ID, &rec.Locale, &kind, &rec.Company, &rec.ProjectName,
			&rec.Province, &rec.Location, &rec.CapitalCost, &rec.CapitalCostRaw,
			&rec.CapitalCostRange, &rec.Status, &rec.CleanTechnology,
			&rec.CleanTechnologyType, &rec.Lat, &rec.Lon, &rec.LineType, &paths,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		rec.Kind = models.RecordKind(kind)
		if rec.IsLine() && paths != "" {
			if err := json.Unmarshal([]byte(paths), &rec.Paths); err != nil {
				return nil, fmt.Errorf("failed to decode paths for %s: %w", rec.ID, err)
			}
		}

		part := ds.Partition(rec.Locale)
		if rec.IsLine() {
			part.Lines = append(part.Lines, rec)
		} else {
			part.Points = append(part.Points, rec)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project rows: %w", err)
	}
	return ds, nil
}

// Count returns the number of cached records.
func (r *ProjectRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return total, nil
}
