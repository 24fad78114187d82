package driver

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/kgbridge/internal/config"
)

type Neo4jDriver struct {
	Driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jDriver opens a Bolt connection and verifies the store is reachable
// before returning. Credentials rejected at verification time surface as
// ErrAuthentication, anything else as ErrConnectivity.
func NewNeo4jDriver(ctx context.Context, cfg *config.NeoConfig) (*Neo4jDriver, error) {
	d, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid driver target '%s': %v", ErrConnectivity, cfg.URI, err)
	}

	if err := d.VerifyConnectivity(ctx); err != nil {
		d.Close(ctx)
		if errors.Is(classify(err), ErrAuthentication) {
			log.Printf("Authentication failed for %s: check NEO4J_USERNAME/NEO4J_PASSWORD", cfg.URI)
			return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
		}
		log.Printf("Failed to connect to Neo4j at %s: %v", cfg.URI, err)
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	log.Printf("Connected to Neo4j at %s (database %s)", cfg.URI, cfg.Database)
	return &Neo4jDriver{Driver: d, database: cfg.Database}, nil
}

func (d *Neo4jDriver) VerifyConnectivity(ctx context.Context) error {
	if err := d.Driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return nil
}

// RunQuery executes a single read query and buffers every row as a
// column-name-to-value map. Failures are logged here and propagated wrapped
// in one of the package sentinels; the caller decides what dies with them.
func (d *Neo4jDriver) RunQuery(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(d.database),
		neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		class := classify(err)
		log.Printf("Query failed (%v): %v", class, err)
		return nil, fmt.Errorf("%w: %v", class, err)
	}

	rows := make([]map[string]interface{}, 0, len(result.Records))
	for _, record := range result.Records {
		rows = append(rows, record.AsMap())
	}
	return rows, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	if err := d.Driver.Close(ctx); err != nil {
		return fmt.Errorf("failed to close neo4j driver: %w", err)
	}
	log.Println("Neo4j connection closed")
	return nil
}
