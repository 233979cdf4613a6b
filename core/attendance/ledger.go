package attendance

// Upsert reconciles incoming records against an existing ledger and returns the new ledger.
//
// An existing record sharing its key with an incoming one is replaced in place; the other incoming
// records are appended in their order. When incoming holds the same key more than once, the last
// occurrence wins and the key is appended (if new) at the position of its first occurrence.
// Neither input is modified.
func Upsert(existing, incoming []Record) []Record {
	result := make([]Record, len(existing), len(existing)+len(incoming))
	copy(result, existing)

	index := make(map[Key]int, len(existing)+len(incoming)) // {key: position in result}
	for i, rec := range result {
		index[rec.Key()] = i
	}

	for _, rec := range incoming {
		key := rec.Key()
		if i, ok := index[key]; ok {
			result[i] = rec
			continue
		}
		index[key] = len(result)
		result = append(result, rec)
	}
	return result
}
