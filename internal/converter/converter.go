package converter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/agenthands/kgbridge/internal/config"
	"github.com/agenthands/kgbridge/internal/driver"
)

// DefaultWeight is assigned to relationships that carry no numeric weight
// property of their own.
const DefaultWeight = 1.0

// UnknownType is the entity type for nodes without any label.
const UnknownType = "Unknown"

const chunkIDPrefix = "chunk_"

// Converter reads every node and relationship from an open graph store and
// reshapes them into the three-sequence knowledge-graph import format.
type Converter struct {
	Driver    driver.GraphDriver
	nodeQuery string
	relQuery  string
}

// New wires a converter onto an already-open driver. Query overrides from
// the configuration replace the built-in templates when non-empty.
func New(d driver.GraphDriver, queries *config.QueryConfig) *Converter {
	c := &Converter{
		Driver:    d,
		nodeQuery: NodeQuery,
		relQuery:  RelationshipQuery,
	}
	if queries != nil {
		if queries.Nodes != "" {
			c.nodeQuery = queries.Nodes
		}
		if queries.Relationships != "" {
			c.relQuery = queries.Relationships
		}
	}
	return c
}

// Convert runs the node query, then the relationship query, then derives one
// chunk per node, and returns the assembled structure. Any query failure
// aborts the whole conversion; there is no partial-result mode. Empty result
// sets are valid and produce empty sequences.
func (c *Converter) Convert(ctx context.Context) (*KnowledgeGraph, error) {
	runID := uuid.New().String()
	log.Printf("[%s] Starting graph conversion", runID)

	nodeRows, err := c.Driver.RunQuery(ctx, c.nodeQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("node query failed: %w", err)
	}
	log.Printf("[%s] Found %d nodes", runID, len(nodeRows))

	entities := make([]Entity, 0, len(nodeRows))
	for _, row := range nodeRows {
		entity, err := entityFromRow(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	relRows, err := c.Driver.RunQuery(ctx, c.relQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("relationship query failed: %w", err)
	}
	log.Printf("[%s] Found %d relationships", runID, len(relRows))

	relations := make([]Relation, 0, len(relRows))
	for _, row := range relRows {
		relation, err := relationFromRow(row)
		if err != nil {
			return nil, err
		}
		relations = append(relations, relation)
	}

	chunks := make([]Chunk, 0, len(entities))
	for _, entity := range entities {
		chunks = append(chunks, chunkFromEntity(entity))
	}

	log.Printf("[%s] Conversion complete: %d entities, %d relations, %d chunks",
		runID, len(entities), len(relations), len(chunks))

	return &KnowledgeGraph{
		Entities:  entities,
		Relations: relations,
		Chunks:    chunks,
	}, nil
}

func entityFromRow(row map[string]interface{}) (Entity, error) {
	sourceID := asString(row["source_id"])
	if sourceID == "" {
		return Entity{}, fmt.Errorf("node row missing source_id: %v", row)
	}

	props := asPropertyMap(row["props"])
	description, err := serializeProperties(props)
	if err != nil {
		return Entity{}, fmt.Errorf("failed to serialize properties of node %s: %w", sourceID, err)
	}

	name := asString(row["entity_name"])
	if name == "" {
		name = sourceID
	}

	return Entity{
		EntityName:  name,
		EntityType:  firstLabel(row["labels"]),
		Description: description,
		SourceID:    sourceID,
		Properties:  props,
	}, nil
}

func relationFromRow(row map[string]interface{}) (Relation, error) {
	sourceID := asString(row["source_id"])
	if sourceID == "" {
		return Relation{}, fmt.Errorf("relationship row missing source_id: %v", row)
	}

	props := asPropertyMap(row["props"])
	keywords, err := serializeProperties(props)
	if err != nil {
		return Relation{}, fmt.Errorf("failed to serialize properties of relationship %s: %w", sourceID, err)
	}

	return Relation{
		SrcID:       asString(row["src_id"]),
		TgtID:       asString(row["tgt_id"]),
		Description: asString(row["description"]),
		Keywords:    keywords,
		Weight:      weightFrom(props),
		SourceID:    sourceID,
	}, nil
}

func chunkFromEntity(entity Entity) Chunk {
	return Chunk{
		ChunkID:         chunkIDPrefix + entity.SourceID,
		Content:         entity.Description,
		SourceID:        entity.SourceID,
		Tokens:          len(strings.Fields(entity.Description)),
		ChunkOrderIndex: 0,
	}
}

// serializeProperties renders a property map as canonical JSON (sorted keys),
// which keeps conversion output stable across runs.
func serializeProperties(props map[string]interface{}) (string, error) {
	data, err := json.Marshal(props)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// firstLabel picks the node's primary label: index 0 of the label list, or
// UnknownType for label-less nodes.
func firstLabel(v interface{}) string {
	labels, ok := v.([]interface{})
	if !ok || len(labels) == 0 {
		return UnknownType
	}
	return asString(labels[0])
}

// weightFrom honors an explicit numeric weight property on the relationship;
// anything absent or non-numeric falls back to DefaultWeight.
func weightFrom(props map[string]interface{}) float64 {
	switch w := props["weight"].(type) {
	case float64:
		return w
	case int64:
		return float64(w)
	case int:
		return float64(w)
	}
	return DefaultWeight
}

func asPropertyMap(v interface{}) map[string]interface{} {
	props, ok := v.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return props
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}
