package mapper

import "udaan/internal/unified/models"

// Aggregate maps every row in rows and concatenates the results in the fixed
// order CERSAI, MCA21, rural, urban. Input order is preserved within each
// source and nothing is filtered or deduplicated.
func Aggregate(rows models.SourceRows) []models.UnifiedRecord {
	out := make([]models.UnifiedRecord, 0, rows.Len())
	for _, r := range rows.CERSAI {
		out = append(out, MapCERSAI(r))
	}
	for _, r := range rows.MCA21 {
		out = append(out, MapMCA21(r))
	}
	for _, r := range rows.Rural {
		out = append(out, MapRural(r))
	}
	for _, r := range rows.Urban {
		out = append(out, MapUrban(r))
	}
	return out
}
