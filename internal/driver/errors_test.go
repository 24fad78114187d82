package driver

import (
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Unauthorized(t *testing.T) {
	err := &neo4j.Neo4jError{Code: "Neo.ClientError.Security.Unauthorized", Msg: "bad credentials"}
	assert.True(t, errors.Is(classify(err), ErrAuthentication))
}

func TestClassify_SyntaxError(t *testing.T) {
	err := &neo4j.Neo4jError{Code: "Neo.ClientError.Statement.SyntaxError", Msg: "Invalid input 'MACH'"}
	assert.True(t, errors.Is(classify(err), ErrQuerySyntax))
}

func TestClassify_OtherServerError(t *testing.T) {
	err := &neo4j.Neo4jError{Code: "Neo.TransientError.General.MemoryPoolOutOfMemoryError", Msg: "oom"}
	assert.True(t, errors.Is(classify(err), ErrQueryExecution))
}

func TestClassify_UnknownError(t *testing.T) {
	assert.True(t, errors.Is(classify(errors.New("socket closed")), ErrQueryExecution))
}
