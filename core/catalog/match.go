package catalog

// MatchQuery carries the criteria for selecting the best variant of a
// family. Zero-valued fields are unspecified: Weight defaults to
// WeightRegular, Style to StyleNormal. Supplying Stretch switches the engine
// to the stretch-aware path. Italic is shorthand for Style = StyleItalic; an
// explicitly set Style takes precedence over Italic when both are given.
type MatchQuery struct {
	Weight  Weight
	Style   Style
	Stretch Stretch
	Italic  bool
}

func (q MatchQuery) effectiveStyle() Style {
	if q.Style != styleUnset {
		return q.Style
	}
	if q.Italic {
		return StyleItalic
	}
	return StyleNormal
}

// BestVariant selects the single variant that best satisfies the query. The
// selection is deterministic and total: a family obtained from a populated
// Collection always yields a variant for any query.
//
// Without Stretch, the engine first fixes the effective style group via the
// style fallback order and then picks the group member with minimal weight
// distance; ties prefer the heavier weight, then the earlier enumeration
// index. With Stretch, candidates are ranked lexicographically by style rank
// (exact, then fallback order, then any other style), stretch distance and
// weight distance; ties keep the earlier enumeration index.
func (f *Family) BestVariant(q MatchQuery) *Variant {
	weight := q.Weight
	if weight == 0 {
		weight = WeightRegular
	}
	style := q.effectiveStyle()

	if q.Stretch != 0 {
		return f.bestByAxes(weight, q.Stretch, style)
	}
	return f.bestByWeightStyle(weight, style)
}

func (f *Family) bestByWeightStyle(weight Weight, style Style) *Variant {
	var group []*Variant
	for _, s := range styleFallback[style] {
		for _, v := range f.variants {
			if v.style == s {
				group = append(group, v)
			}
		}
		if len(group) > 0 {
			break
		}
	}
	if len(group) == 0 {
		// Unreachable for well-formed snapshots; keeps the engine total.
		group = f.variants
	}

	best := group[0]
	bestDist := weightDistance(best.weight, weight)
	for _, v := range group[1:] {
		d := weightDistance(v.weight, weight)
		if d < bestDist || (d == bestDist && v.weight > best.weight) {
			best, bestDist = v, d
		}
	}
	return best
}

func (f *Family) bestByAxes(weight Weight, stretch Stretch, style Style) *Variant {
	order := styleFallback[style]
	styleRank := func(s Style) int {
		for i, candidate := range order {
			if s == candidate {
				return i
			}
		}
		return len(order)
	}

	best := f.variants[0]
	bestKey := [3]int{styleRank(best.style), absInt(int(best.stretch) - int(stretch)), absInt(int(best.weight) - int(weight))}
	for _, v := range f.variants[1:] {
		key := [3]int{styleRank(v.style), absInt(int(v.stretch) - int(stretch)), absInt(int(v.weight) - int(weight))}
		if lessKey(key, bestKey) {
			best, bestKey = v, key
		}
	}
	return best
}

func weightDistance(a, b Weight) int {
	return absInt(int(a) - int(b))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// lessKey is a strict lexicographic comparison; equal keys keep the earlier
// candidate, which preserves enumeration-order tie-breaking.
func lessKey(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
