package models

// Sort keys accepted by the filter engine.
const (
	SortByProjectName = "project_name"
	SortByCompany     = "company"
	SortByProvince    = "province"
	SortByLocation    = "location"
	SortByStatus      = "status"
	SortByCapitalCost = "capital_cost"
)

// ChoiceAll is the sentinel for single-choice filters that apply no constraint.
const ChoiceAll = "all"

// Capital cost bucket keys. Thresholds are millions of dollars:
// 10_1000 is [10, 1000), 1000_5000 is [1000, 5000], 5000_plus is (5000, inf).
const (
	CostBucketLow  = "10_1000"
	CostBucketMid  = "1000_5000"
	CostBucketHigh = "5000_plus"
)

// Status filter choices.
const (
	StatusPlanned           = "planned"
	StatusUnderConstruction = "construction"
)

// Clean technology filter choices.
const (
	CleanTechYes = "yes"
	CleanTechNo  = "no"
)

// ProjectFilter represents filter and sort parameters for querying projects.
// Empty multi-select slices and "all" single choices apply no constraint;
// unrecognized single-choice values degrade to "all" rather than erroring.
type ProjectFilter struct {
	Locale         string   `form:"lang"`
	ProjectNames   []string `form:"projectName"`
	Companies      []string `form:"company"`
	Provinces      []string `form:"province"`
	Locations      []string `form:"location"`
	CleanTechTypes []string `form:"cleanTechType"`
	CostBucket     string   `form:"costBucket"`  // 10_1000, 1000_5000, 5000_plus, all
	Status         string   `form:"status"`      // planned, construction, all
	CleanTech      string   `form:"cleanTech"`   // yes, no, all
	MapProvince    string   `form:"mapProvince"` // canonical province code from a map click
	SortBy         string   `form:"sortBy"`
	SortDescending bool     `form:"sortDesc"`
}

// IsDefault reports whether the filter applies no constraint at all.
func (f *ProjectFilter) IsDefault() bool {
	return len(f.ProjectNames) == 0 &&
		len(f.Companies) == 0 &&
		len(f.Provinces) == 0 &&
		len(f.Locations) == 0 &&
		len(f.CleanTechTypes) == 0 &&
		(f.CostBucket == "" || f.CostBucket == ChoiceAll) &&
		(f.Status == "" || f.Status == ChoiceAll) &&
		(f.CleanTech == "" || f.CleanTech == ChoiceAll) &&
		f.MapProvince == ""
}

// FilterOptions holds the distinct values present in the active locale's
// record set, used to populate the filter menus. Always recomputed from the
// immutable dataset, never cached mutable state.
type FilterOptions struct {
	ProjectNames   []string `json:"projectNames"`
	Companies      []string `json:"companies"`
	Provinces      []string `json:"provinces"`
	Locations      []string `json:"locations"`
	CleanTechTypes []string `json:"cleanTechTypes"`
}
