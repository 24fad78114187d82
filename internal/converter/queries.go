package converter

// Both queries derive names with the same coalesce chain
// (name -> title -> elementId). Relations reference nodes by that derived
// name, not by element id, so any custom query pair configured over these
// defaults has to keep the two expressions identical.
//
// Labels and properties come back raw; label selection and property
// serialization happen client-side so the queries work on stores without
// the APOC plugin installed.
const (
	NodeQuery = `
		MATCH (n)
		RETURN
			elementId(n) AS source_id,
			coalesce(n.name, n.title, elementId(n)) AS entity_name,
			labels(n) AS labels,
			properties(n) AS props
	`

	RelationshipQuery = `
		MATCH (src)-[r]->(tgt)
		RETURN
			coalesce(src.name, src.title, elementId(src)) AS src_id,
			coalesce(tgt.name, tgt.title, elementId(tgt)) AS tgt_id,
			type(r) AS description,
			properties(r) AS props,
			elementId(r) AS source_id
	`
)
