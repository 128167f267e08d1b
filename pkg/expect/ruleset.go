package expect

// RuleSet is an ordered collection of expectations. Insertion order is
// preserved and duplicates are kept: each added expectation produces
// its own entry in the validation report.
type RuleSet struct {
	items []Expectation
}

// NewRuleSet builds a rule set with the given initial expectations.
func NewRuleSet(exps ...Expectation) *RuleSet {
	rs := &RuleSet{}
	rs.Add(exps...)
	return rs
}

// Add appends expectations in the order given.
func (rs *RuleSet) Add(exps ...Expectation) {
	rs.items = append(rs.items, exps...)
}

// Len returns the number of expectations, duplicates included.
func (rs *RuleSet) Len() int { return len(rs.items) }

// ForField returns the ordered subset of expectations targeting the
// named field.
func (rs *RuleSet) ForField(name string) []Expectation {
	var out []Expectation
	for _, e := range rs.items {
		if !e.DatasetScoped() && e.Target == name {
			out = append(out, e)
		}
	}
	return out
}

// All returns the evaluation order: field expectations first in
// insertion order, then dataset-scoped expectations in insertion
// order.
func (rs *RuleSet) All() []Expectation {
	out := make([]Expectation, 0, len(rs.items))
	for _, e := range rs.items {
		if !e.DatasetScoped() {
			out = append(out, e)
		}
	}
	for _, e := range rs.items {
		if e.DatasetScoped() {
			out = append(out, e)
		}
	}
	return out
}
