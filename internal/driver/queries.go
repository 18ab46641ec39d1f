package driver

import "fmt"

// The four query shapes the tool issues. IRIs are inlined into the query
// text since the SPARQL protocol has no parameter binding.

const prefixes = `
PREFIX metanet: <https://w3id.org/framester/metanet/schema/>
PREFIX framenet: <https://w3id.org/framester/framenet/schema/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX schema: <http://schema.org/>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
`

// MappingQuery asks for a metaphor's source/target frames plus any role
// pairs, entailment description, and example sentence.
func MappingQuery(metaphorIRI string) string {
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?src ?tgt ?srcRole ?tgtRole ?ent ?ex
WHERE {
  BIND(<%s> AS ?metaphor)
  ?metaphor metanet:hasSourceFrame ?src .
  ?metaphor metanet:hasTargetFrame ?tgt .
  OPTIONAL { ?metaphor metanet:sourceRole ?srcRole . }
  OPTIONAL { ?metaphor metanet:targetRole ?tgtRole . }
  OPTIONAL { ?metaphor metanet:hasEntailmentDescription ?ent . }
  OPTIONAL { ?metaphor metanet:hasExample ?ex . }
}`, metaphorIRI)
}

// ExpansionQuery collects frames one near-equivalence hop away from the
// seed, in either direction, excluding the seed itself.
func ExpansionQuery(frameIRI string) string {
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?candidate
WHERE {
  BIND(<%s> AS ?seed)
  VALUES ?p { skos:closeMatch schema:subsumedUnder }
  { ?seed ?p ?candidate . } UNION { ?candidate ?p ?seed . }
  FILTER(?candidate != ?seed)
}`, frameIRI)
}

// MembershipAskQuery checks whether any metaphor uses the frame in the
// given role. rel must be a metanet mapping property local name.
func MembershipAskQuery(frameIRI, rel string) string {
	return prefixes + fmt.Sprintf(`
ASK { ?m metanet:%s <%s> . }`, rel, frameIRI)
}

// LabelsQuery fetches a frame's frame-element labels together with the
// labels of WordNet synsets linked from the frame or its lexical units.
func LabelsQuery(frameIRI string) string {
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?feLabel ?synLabel
WHERE {
  BIND(<%s> AS ?f)
  OPTIONAL {
    VALUES ?feRel { framenet:fe framenet:frameElement schema:hasPart metanet:sourceRole metanet:targetRole }
    ?f ?feRel ?fe .
    { ?fe rdfs:label ?feLabel . } UNION { ?fe skos:prefLabel ?feLabel . }
  }
  OPTIONAL {
    { ?f skos:closeMatch ?syn . } UNION { ?f schema:sameAs ?syn . } UNION { ?f framenet:lu ?lu . ?lu skos:closeMatch ?syn . }
    FILTER(CONTAINS(STR(?syn), "wn"))
    { ?syn rdfs:label ?synLabel . } UNION { ?syn skos:prefLabel ?synLabel . }
  }
}`, frameIRI)
}
