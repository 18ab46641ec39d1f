// Package vocabulary collects the IRI constants and SPARQL prefixes used by
// the Framester/MetaNet queries.
package vocabulary

// FramesterEndpoint is the default public SPARQL endpoint.
const FramesterEndpoint = "https://etna.istc.cnr.it/framester2/sparql"

// Namespace prefixes for the ontologies the queries touch.
const (
	MetaNetSchema    = "https://w3id.org/framester/metanet/schema/"
	MetaNetMetaphors = "https://w3id.org/framester/metanet/metaphors/"
	FrameNetSchema   = "https://w3id.org/framester/framenet/schema/"
	WordNet30Schema  = "https://w3id.org/framester/wn/wn30/schema/"
	SKOSCore         = "http://www.w3.org/2004/02/skos/core#"
	SchemaOrg        = "http://schema.org/"
	RDFSchema        = "http://www.w3.org/2000/01/rdf-schema#"
)

// MetaNet schema properties asserted on metaphor individuals.
const (
	PropHasSourceFrame = MetaNetSchema + "hasSourceFrame"
	PropHasTargetFrame = MetaNetSchema + "hasTargetFrame"
	PropSourceRole     = MetaNetSchema + "sourceRole"
	PropTargetRole     = MetaNetSchema + "targetRole"
	PropEntailment     = MetaNetSchema + "hasEntailmentDescription"
	PropExample        = MetaNetSchema + "hasExample"
)

// Near-equivalence relations used for frame typing expansion. Both are
// treated as equally valid expansion edges.
const (
	PropCloseMatch    = SKOSCore + "closeMatch"
	PropSubsumedUnder = SchemaOrg + "subsumedUnder"
)

// DefaultMetaphors is the built-in input list: the MetaNet government and
// machine metaphors the tool was written to analyze. Config may override it.
var DefaultMetaphors = []string{
	MetaNetMetaphors + "GOVERNMENT_INSTITUTION_IS_A_BUILDING",
	MetaNetMetaphors + "GOVERNMENT_IS_A_PERSON",
	MetaNetMetaphors + "GOVERNMENT_IS_AN_ORGANISM",
	MetaNetMetaphors + "GOVERNING_ACTION_IS_MOTION",
	MetaNetMetaphors + "GOVERNMENT_INSTITUTION_IS_A_PHYSICAL_STRUCTURE",
	MetaNetMetaphors + "CAUSED_CHANGE_OF_STATE_IS_CAUSED_CHANGE_OF_LOCATION",
	MetaNetMetaphors + "ANALYZING_IS_DISSECTING",
	MetaNetMetaphors + "MACHINES_ARE_PEOPLE",
	MetaNetMetaphors + "CHANGE_IN_CONTROLLER_IS_TRANSFER_OF_POSSESSION",
	MetaNetMetaphors + "DISEASE_TREATMENT_IS_WAR",
}
