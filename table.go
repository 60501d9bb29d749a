package automata

import "github.com/enetx/g"

func newTable[S, I comparable]() *table[S, I] {
	return &table[S, I]{records: g.NewMap[g.Pair[S, I], *record[S]]()}
}

// insert stores rec under (state, input). A pair is never overwritten: the
// second insert for the same pair fails with ErrDuplicateTransition.
func (t *table[S, I]) insert(state S, input I, rec *record[S]) error {
	k := g.Pair[S, I]{Key: state, Value: input}
	if t.records.Contains(k) {
		return &ErrDuplicateTransition[S, I]{State: state, Input: input}
	}

	t.records.Set(k, rec)

	return nil
}

// lookup returns the record for (state, input), or None when nothing is registered.
func (t *table[S, I]) lookup(state S, input I) g.Option[*record[S]] {
	return t.records.Get(g.Pair[S, I]{Key: state, Value: input})
}

func (t *table[S, I]) contains(state S, input I) bool {
	return t.records.Contains(g.Pair[S, I]{Key: state, Value: input})
}

// clone copies the table and every record in it, so the copy can be
// configured without touching the original.
func (t *table[S, I]) clone() *table[S, I] {
	c := newTable[S, I]()
	for k, rec := range t.records {
		cp := *rec
		c.records.Set(k, &cp)
	}

	return c
}

// count returns the number of distinct (state, input) entries.
func (t *table[S, I]) count() int { return len(t.records) }

// states returns every state the table mentions, as a source or as a target.
func (t *table[S, I]) states() g.Slice[S] {
	set := g.NewSet[S]()

	for k, rec := range t.records {
		set.Insert(k.Key)
		set.Insert(rec.next)
	}

	return set.ToSlice()
}
