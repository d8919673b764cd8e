package union

// Clause a single match clause: either a case for one alternative or a catch-all otherwise
type Clause[U any, R any] struct {
	tag       int
	otherwise bool
	handle    func(U) R
}

// Case returns clause handling alternative with the given tag
func Case[U any, R any](tag int, handle func(U) R) Clause[U, R] {
	return Clause[U, R]{
		tag:    tag,
		handle: handle,
	}
}

// Otherwise returns catch-all clause for alternatives without explicit case
func Otherwise[U any, R any](handle func(U) R) Clause[U, R] {
	return Clause[U, R]{
		tag:       -1,
		otherwise: true,
		handle:    handle,
	}
}

// Matcher clauses composed into a dispatch table indexed by tag
type Matcher[U any, R any] struct {
	tagOf     func(U) int
	cases     []func(U) R
	otherwise func(U) R
}

// Compose builds a matcher for a union with the given number of alternatives. tagOf extracts the active
// tag of an instance.
//
// Composition panics when clauses are inconsistent: duplicate cases, misplaced otherwise, a tag out of range,
// or alternatives left without a case when there is no otherwise clause.
func Compose[U any, R any](alternatives int, tagOf func(U) int, clauses ...Clause[U, R]) *Matcher[U, R] {
	m := &Matcher[U, R]{
		tagOf: tagOf,
		cases: make([]func(U) R, alternatives),
	}

	for i, c := range clauses {
		if c.otherwise {
			if m.otherwise != nil {
				panic(&ClauseOrderError{Position: i, Reason: "more than one otherwise clause"})
			}
			m.otherwise = c.handle
			continue
		}

		if m.otherwise != nil {
			panic(&ClauseOrderError{Position: i, Reason: "case clause after otherwise"})
		}
		if c.tag < 0 || c.tag >= alternatives {
			panic(UnknownTag(c.tag))
		}
		if m.cases[c.tag] != nil {
			panic(&DuplicateCaseError{Tag: c.tag})
		}
		m.cases[c.tag] = c.handle
	}

	if m.otherwise != nil {
		return m
	}

	var missing []int
	for tag, handle := range m.cases {
		if handle == nil {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		panic(&NonExhaustiveError{Missing: missing})
	}

	return m
}

// Match dispatches u to the case of its active alternative, or to otherwise if there is no such case
func (m *Matcher[U, R]) Match(u U) R {
	tag := m.tagOf(u)
	if tag < 0 || tag >= len(m.cases) {
		panic(UnknownTag(tag))
	}

	if handle := m.cases[tag]; handle != nil {
		return handle(u)
	}

	return m.otherwise(u)
}
