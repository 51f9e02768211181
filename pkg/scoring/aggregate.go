package scoring

import (
	"slices"
	"sort"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

type sdgAccumulator struct {
	sum    float64
	weight int
	topics []string
}

// aggregateSDGs averages topic scores per SDG over every material topic
// link. A material topic whose code has no computed score counts as 0.
// Results are sorted by SDG number.
func aggregateSDGs(material []esg.MaterialTopic, scores []TopicScore) []SDGScore {
	byTopic := make(map[string]float64, len(scores))
	for _, s := range scores {
		byTopic[s.TopicCode] = s.Score
	}

	acc := make(map[int]*sdgAccumulator)
	var order []int
	for _, m := range material {
		s := byTopic[m.TopicCode]
		for _, link := range m.SDGLinks {
			a, ok := acc[link.SDG]
			if !ok {
				a = &sdgAccumulator{}
				acc[link.SDG] = a
				order = append(order, link.SDG)
			}
			a.sum += s
			a.weight++
			if !slices.Contains(a.topics, m.TopicCode) {
				a.topics = append(a.topics, m.TopicCode)
			}
		}
	}

	sort.Ints(order)

	out := make([]SDGScore, 0, len(order))
	for _, sdg := range order {
		a := acc[sdg]
		var score float64
		if a.weight > 0 {
			score = RoundTo(a.sum/float64(a.weight), 1)
		}
		out = append(out, SDGScore{
			SDG:                        sdg,
			Score:                      score,
			MaterialTopicsContributing: a.topics,
		})
	}
	return out
}

// overallScore is the weighted mean of the topic scores, rounded to one
// decimal, or 0 if the weights sum to 0.
func overallScore(scores []TopicScore, w Weights) float64 {
	var sum, wsum float64
	for _, s := range scores {
		tw := w.TopicWeight(s.TopicCode)
		sum += s.Score * tw
		wsum += tw
	}
	if wsum <= 0 {
		return 0
	}
	return RoundTo(sum/wsum, 1)
}
