package nlp

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-scanner/internal/schemas"
)

// DefaultSkillDBPath is the bundled taxonomy database, resolved relative to
// the working directory like the schema files.
const DefaultSkillDBPath = "data/skills.json"

// skillDBSchemaPath is the JSON Schema the database is validated against.
const skillDBSchemaPath = "schemas/skill_db.schema.json"

// skillDB mirrors the on-disk database layout.
type skillDB struct {
	Skills []skillEntry `json:"skills"`
}

type skillEntry struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases,omitempty"`
}

// DBMatcher matches text against a fixed skill database. The whole database
// is compiled into a single alternation with longer terms preferred, so
// "machine learning" wins over "machine" at the same position. A DBMatcher is
// immutable after construction and safe for concurrent use.
type DBMatcher struct {
	path    string
	pattern *regexp.Regexp
	// lowercased term -> taxonomy category
	categories map[string]string
	skillCount int
}

// NewDBMatcher builds a matcher from the skill database at path (empty path
// uses the bundled default). The file is validated against the skill database
// JSON Schema before parsing so a malformed taxonomy surfaces as a typed
// error, not a silently empty matcher.
func NewDBMatcher(path string) (*DBMatcher, error) {
	if path == "" {
		path = schemas.ResolvePath(DefaultSkillDBPath)
		if path == "" {
			return nil, &SkillDBError{Path: DefaultSkillDBPath, Message: "bundled skill database not found"}
		}
	}

	schemaPath := schemas.ResolvePath(skillDBSchemaPath)
	if schemaPath == "" {
		return nil, &SkillDBError{Path: skillDBSchemaPath, Message: "skill database schema not found"}
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return nil, &SkillDBError{Path: path, Message: "schema validation failed", Cause: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SkillDBError{Path: path, Message: "failed to read database", Cause: err}
	}

	var db skillDB
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, &SkillDBError{Path: path, Message: "failed to parse database JSON", Cause: err}
	}
	if len(db.Skills) == 0 {
		return nil, &SkillDBError{Path: path, Message: "database contains no skills"}
	}

	return compileMatcher(path, &db)
}

// compileMatcher builds the alternation pattern and category index.
func compileMatcher(path string, db *skillDB) (*DBMatcher, error) {
	categories := make(map[string]string)
	terms := make([]string, 0, len(db.Skills))

	for _, skill := range db.Skills {
		for _, term := range append([]string{skill.Name}, skill.Aliases...) {
			normalized := strings.ToLower(strings.TrimSpace(term))
			if normalized == "" {
				continue
			}
			if _, exists := categories[normalized]; exists {
				continue
			}
			categories[normalized] = skill.Category
			terms = append(terms, normalized)
		}
	}

	// Longest terms first so the alternation prefers the most specific match.
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	alternatives := make([]string, len(terms))
	for i, term := range terms {
		alternatives[i] = boundedTerm(term)
	}

	pattern, err := regexp.Compile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)
	if err != nil {
		return nil, &SkillDBError{Path: path, Message: "failed to compile term pattern", Cause: err}
	}

	return &DBMatcher{
		path:       path,
		pattern:    pattern,
		categories: categories,
		skillCount: len(db.Skills),
	}, nil
}

// boundedTerm quotes a term and anchors it on word boundaries where the term
// itself starts or ends with a word character. Terms like "c++" or ".net"
// only get the boundary on the word-character side.
func boundedTerm(term string) string {
	quoted := regexp.QuoteMeta(term)
	if isWordByte(term[0]) {
		quoted = `\b` + quoted
	}
	if isWordByte(term[len(term)-1]) {
		quoted += `\b`
	}
	return quoted
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Annotate reports every full match in document order. Matches are
// non-overlapping; the span text is returned as it appears in the document.
func (m *DBMatcher) Annotate(_ context.Context, text string) ([]Annotation, error) {
	annotations := make([]Annotation, 0)
	for _, span := range m.pattern.FindAllStringIndex(text, -1) {
		matched := text[span[0]:span[1]]
		category, ok := m.categories[strings.ToLower(matched)]
		if !ok {
			continue
		}
		annotations = append(annotations, Annotation{Text: matched, Category: category})
	}
	return annotations, nil
}

// Path returns the database file the matcher was built from.
func (m *DBMatcher) Path() string {
	return m.path
}

// Len returns the number of skills in the database.
func (m *DBMatcher) Len() int {
	return m.skillCount
}
