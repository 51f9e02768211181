package scoring

import "github.com/esgbuddy/esgbuddy/pkg/esg"

// ContentIndex emits one row per declared disclosure of every material
// topic, in declaration order. Duplicates are kept.
func ContentIndex(material []esg.MaterialTopic, baseRoute string) []ContentIndexRow {
	rows := make([]ContentIndexRow, 0)
	for _, m := range material {
		for _, d := range m.GRIDisclosures {
			rows = append(rows, ContentIndexRow{
				Standard:        m.TopicCode,
				DisclosureCode:  d,
				DisclosureTitle: "Disclosure " + d,
				Location:        baseRoute + "/" + m.TopicCode + "/" + d,
			})
		}
	}
	return rows
}
