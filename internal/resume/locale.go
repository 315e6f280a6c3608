// Package resume loads localized resume data and exports it as a PDF
// document.
package resume

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/leonardomurakami/portfolio/internal/schemas"
)

// DefaultLanguage is the fallback when a requested locale is unknown or
// broken.
const DefaultLanguage = "en"

// Locale is one per-language resume document.
type Locale struct {
	Personal  Personal  `json:"personal"`
	Summary   string    `json:"summary"`
	Company   Company   `json:"company"`
	Roles     []Role    `json:"roles"`
	Education Education `json:"education"`
}

// Personal holds the resume header contact block.
type Personal struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Company describes the current employer block.
type Company struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Period      string `json:"period"`
}

// Role is one position held, with its achievement bullets.
type Role struct {
	Title        string   `json:"title"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

// Education is the single education block at the bottom of the resume.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Description string `json:"description,omitempty"`
}

// SkillCategory is an ordered skills section entry.
type SkillCategory struct {
	Category string
	Items    []string
}

// LoadLocale reads and validates the locale document for a language from the
// given filesystem. Unknown or invalid locales fall back to the default
// language; a broken default is an error.
func LoadLocale(fsys fs.FS, language string) (*Locale, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = DefaultLanguage
	}

	locale, err := readLocale(fsys, language)
	if err != nil && language != DefaultLanguage {
		return readLocale(fsys, DefaultLanguage)
	}
	return locale, err
}

func readLocale(fsys fs.FS, language string) (*Locale, error) {
	path := fmt.Sprintf("locales/%s.json", language)
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.LocaleSchema, data); err != nil {
		return nil, fmt.Errorf("invalid locale %s: %w", path, err)
	}

	var locale Locale
	if err := json.Unmarshal(data, &locale); err != nil {
		return nil, fmt.Errorf("failed to parse locale %s: %w", path, err)
	}
	return &locale, nil
}

// Skills returns the fixed skills section for a language. The content is
// curated rather than data-driven, so it lives here instead of the locale
// files.
func Skills(language string) []SkillCategory {
	if strings.EqualFold(language, "pt") {
		return []SkillCategory{
			{Category: "Linguagens de Programação", Items: []string{"Python", "Go", "C/C++", "Bash", "SQL"}},
			{Category: "Nuvem e Infraestrutura", Items: []string{"AWS", "Kubernetes", "Docker", "Terraform", "Helm"}},
			{Category: "Monitoramento e Observabilidade", Items: []string{"Prometheus", "Grafana", "CloudWatch", "Datadog", "ELK Stack"}},
			{Category: "Dados e ML", Items: []string{"MLOps", "Pipelines de Dados", "PostgreSQL", "BigQuery", "Scikit-learn"}},
			{Category: "Ferramentas e Metodologias", Items: []string{"Git", "Linux", "CI/CD", "SLI/SLO", "Resposta a Incidentes"}},
		}
	}
	return []SkillCategory{
		{Category: "Programming Languages", Items: []string{"Python", "Go", "C/C++", "Bash", "SQL"}},
		{Category: "Cloud & Infrastructure", Items: []string{"AWS", "Kubernetes", "Docker", "Terraform", "Helm"}},
		{Category: "Monitoring & Observability", Items: []string{"Prometheus", "Grafana", "CloudWatch", "Datadog", "ELK Stack"}},
		{Category: "Data & ML", Items: []string{"MLOps", "Data Pipelines", "PostgreSQL", "BigQuery", "Scikit-learn"}},
		{Category: "Tools & Methodologies", Items: []string{"Git", "Linux", "CI/CD", "SLI/SLO", "Incident Response"}},
	}
}

// Filename returns the download filename for a language, derived from the
// locale's personal name.
func Filename(locale *Locale, language string) string {
	name := strings.ReplaceAll(locale.Personal.Name, " ", "_")
	suffix := "EN"
	if strings.EqualFold(language, "pt") {
		suffix = "PT"
	}
	return fmt.Sprintf("%s_Resume_%s.pdf", name, suffix)
}
