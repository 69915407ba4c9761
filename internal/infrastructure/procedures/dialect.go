package procedures

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
)

// Dialect turns a named call into the SQL statement the engine expects.
type Dialect interface {
	Name() string
	Render(procedure string, params []Param) (string, []any)
}

var procedureName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func ValidProcedureName(name string) bool {
	return procedureName.MatchString(name)
}

// MySQL renders CALL `name`(?, ...).
type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) Render(procedure string, params []Param) (string, []any) {
	return "CALL `" + procedure + "`(" + placeholders(len(params)) + ")", values(params)
}

// Postgres renders SELECT * FROM "name"(?, ...) so that set-returning
// functions hand back their rows the way MySQL procedures do.
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) Render(procedure string, params []Param) (string, []any) {
	return "SELECT * FROM " + pq.QuoteIdentifier(procedure) + "(" + placeholders(len(params)) + ")", values(params)
}

func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "mysql", "mariadb":
		return MySQL{}, nil
	case "postgres", "postgresql":
		return Postgres{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func values(params []Param) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = p.Value
	}
	return out
}
