package attendance

// Summarize counts, for every student of the roster, the present & absent records of the ledger,
// and credits hoursPerSession for each present one.
// Records of students outside the roster are ignored.
func Summarize(roster []string, ledger []Record, hoursPerSession float64) Summary {
	summary := make(Summary, len(roster))
	for _, id := range roster {
		summary[id] = Tally{}
	}

	for _, rec := range ledger {
		tally, ok := summary[rec.StudentID]
		if !ok {
			continue
		}
		if rec.Status == StatusPresent {
			tally.Present++
		} else {
			tally.Absent++
		}
		summary[rec.StudentID] = tally
	}

	for id, tally := range summary {
		tally.Hours = float64(tally.Present) * hoursPerSession
		summary[id] = tally
	}
	return summary
}
