package driver

import (
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// The four failure classes a caller can see from this package. Everything is
// fatal; nothing is retried here. Concrete failures wrap one of these, so
// callers classify with errors.Is.
var (
	ErrAuthentication = errors.New("authentication rejected by graph store")
	ErrConnectivity   = errors.New("graph store unreachable")
	ErrQuerySyntax    = errors.New("query syntax error")
	ErrQueryExecution = errors.New("query execution failed")
)

// classify maps a raw driver error onto one of the package sentinels by
// inspecting the server status code when one is present.
func classify(err error) error {
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) {
		switch {
		case strings.Contains(neoErr.Code, "Security.Unauthorized"),
			strings.Contains(neoErr.Code, "Security.AuthenticationRateLimit"):
			return ErrAuthentication
		case strings.Contains(neoErr.Code, "Statement.SyntaxError"):
			return ErrQuerySyntax
		}
		return ErrQueryExecution
	}
	if neo4j.IsConnectivityError(err) {
		return ErrConnectivity
	}
	return ErrQueryExecution
}
