// Package i18n is the translation lookup collaborator: a flat key/locale
// table the rest of the code treats as opaque display text.
package i18n

var messages = map[string]map[string]string{
	"load_error": {
		"en": "The projects dataset could not be loaded. Please try again later.",
		"fr": "Les données sur les projets n'ont pas pu être chargées. Veuillez réessayer plus tard.",
	},
	"no_data": {
		"en": "No projects match the selected filters.",
		"fr": "Aucun projet ne correspond aux filtres sélectionnés.",
	},
	"export_title": {
		"en": "Major energy projects",
		"fr": "Grands projets énergétiques",
	},
	"col_project": {
		"en": "Project",
		"fr": "Projet",
	},
	"col_company": {
		"en": "Company",
		"fr": "Entreprise",
	},
	"col_province": {
		"en": "Province",
		"fr": "Province",
	},
	"col_location": {
		"en": "Location",
		"fr": "Emplacement",
	},
	"col_capital_cost": {
		"en": "Capital cost (millions)",
		"fr": "Coût en capital (millions)",
	},
	"col_status": {
		"en": "Status",
		"fr": "État",
	},
	"col_clean_tech": {
		"en": "Clean technology",
		"fr": "Technologie propre",
	},
	"col_clean_tech_type": {
		"en": "Clean technology type",
		"fr": "Type de technologie propre",
	},
}

// GetText returns the message for a key in the given locale, falling back
// to English, then to the key itself.
func GetText(key, locale string) string {
	byLocale, ok := messages[key]
	if !ok {
		return key
	}
	if text, ok := byLocale[locale]; ok {
		return text
	}
	if text, ok := byLocale["en"]; ok {
		return text
	}
	return key
}
