package ccachestats

// ValueStore holds one 64-bit counter per field, indexed by ordinal.
// All 32 slots always exist; an unwritten slot reads as zero. The zero
// value is ready to use.
type ValueStore struct {
	values [NumFields]uint64
}

// Get returns the counter recorded for the field. Lookups never fail;
// out-of-range fields read as zero.
func (s *ValueStore) Get(f Field) uint64 {
	if f >= NumFields {
		return 0
	}
	return s.values[f]
}

func (s *ValueStore) set(f Field, v uint64) {
	s.values[f] = v
}

// mergeFrom folds another store into this one. Counters accumulate
// additively across shards, except the zeroing timestamp which keeps
// the most recent reset. Both rules are commutative and associative, so
// merge order never affects the result.
func (s *ValueStore) mergeFrom(o *ValueStore) {
	for i := range s.values {
		if Field(i) == FieldZeroTimeStamp {
			if o.values[i] > s.values[i] {
				s.values[i] = o.values[i]
			}
			continue
		}
		s.values[i] += o.values[i]
	}
}
