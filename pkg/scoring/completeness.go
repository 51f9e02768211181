package scoring

import (
	"slices"
	"strings"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

// Completeness returns the share of expected disclosures that were found,
// comparing whitespace-trimmed codes. An empty expected list is fully
// complete.
func Completeness(found, expected []string) float64 {
	if len(expected) == 0 {
		return 1
	}

	have := make(map[string]bool, len(found))
	for _, f := range found {
		have[strings.TrimSpace(f)] = true
	}

	hits := 0
	for _, e := range expected {
		if have[strings.TrimSpace(e)] {
			hits++
		}
	}
	return float64(hits) / float64(len(expected))
}

// declaredDisclosures maps each material topic code to its declared
// disclosure list. A later declaration of the same code replaces an earlier
// one, including with a null list.
func declaredDisclosures(material []esg.MaterialTopic) map[string][]string {
	declared := make(map[string][]string, len(material))
	for _, m := range material {
		declared[m.TopicCode] = m.GRIDisclosures
	}
	return declared
}

// expectedFor returns the declared disclosure list for a topic, or the
// topic's fallback list if the materiality assessment does not declare one.
// A declared empty list ([]) is kept; a null or absent list falls back.
func expectedFor(t Topic, declared map[string][]string) []string {
	if list := declared[t.Code()]; list != nil {
		return list
	}
	return t.Disclosures()
}

// foundDisclosures scans the gri_mapping of every block and keeps the codes
// that appear verbatim in expected, without duplicates, in discovery order.
func foundDisclosures(blocks []*esg.Block, expected []string) []string {
	var found []string
	for _, b := range blocks {
		for _, code := range b.GRIMapping {
			if slices.Contains(expected, code) && !slices.Contains(found, code) {
				found = append(found, code)
			}
		}
	}
	return found
}
