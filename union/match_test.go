package union

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample a hand-made tagged value: tag 0 int, tag 1 string, tag 2 bool
type sample struct {
	tag int
	i   int
	s   string
	b   bool
}

func sampleTag(s *sample) int { return s.tag }

func caseInt(fn func(int) string) Clause[*sample, string] {
	return Case(0, func(s *sample) string { return fn(s.i) })
}

func caseString(fn func(string) string) Clause[*sample, string] {
	return Case(1, func(s *sample) string { return fn(s.s) })
}

func caseBool(fn func(bool) string) Clause[*sample, string] {
	return Case(2, func(s *sample) string { return fn(s.b) })
}

func TestMatcherExplicitCases(t *testing.T) {
	m := Compose(3, sampleTag,
		caseInt(func(int) string { return "int" }),
		caseString(func(v string) string { return "string " + v }),
		caseBool(func(bool) string { return "bool" }),
	)

	assert.Equal(t, "int", m.Match(&sample{tag: 0, i: 12}))
	assert.Equal(t, "string abc", m.Match(&sample{tag: 1, s: "abc"}))
	assert.Equal(t, "bool", m.Match(&sample{tag: 2}))
}

func TestMatcherOtherwise(t *testing.T) {
	m := Compose(3, sampleTag,
		caseInt(func(int) string { return "int" }),
		Otherwise(func(s *sample) string { return "fallback" }),
	)

	assert.Equal(t, "int", m.Match(&sample{tag: 0}), "explicit case must win over otherwise")
	assert.Equal(t, "fallback", m.Match(&sample{tag: 1}))
	assert.Equal(t, "fallback", m.Match(&sample{tag: 2}))
}

func TestMatcherOtherwiseOnly(t *testing.T) {
	m := Compose(3, sampleTag, Otherwise(func(s *sample) int { return s.tag * 10 }))

	assert.Equal(t, 0, m.Match(&sample{tag: 0}))
	assert.Equal(t, 20, m.Match(&sample{tag: 2}))
}

func TestComposeFailures(t *testing.T) {
	tests := []struct {
		name    string
		clauses []Clause[*sample, string]
		check   func(t *testing.T, err error)
	}{
		{
			name: "duplicate-case",
			clauses: []Clause[*sample, string]{
				caseInt(func(int) string { return "" }),
				caseString(func(string) string { return "" }),
				caseInt(func(int) string { return "" }),
			},
			check: func(t *testing.T, err error) {
				var e *DuplicateCaseError
				require.True(t, errors.As(err, &e))
				require.Equal(t, 0, e.Tag)
			},
		},
		{
			name: "non-exhaustive",
			clauses: []Clause[*sample, string]{
				caseString(func(string) string { return "" }),
			},
			check: func(t *testing.T, err error) {
				var e *NonExhaustiveError
				require.True(t, errors.As(err, &e))
				require.Equal(t, []int{0, 2}, e.Missing)
			},
		},
		{
			name: "double-otherwise",
			clauses: []Clause[*sample, string]{
				Otherwise(func(*sample) string { return "" }),
				Otherwise(func(*sample) string { return "" }),
			},
			check: func(t *testing.T, err error) {
				var e *ClauseOrderError
				require.True(t, errors.As(err, &e))
				require.Equal(t, 1, e.Position)
			},
		},
		{
			name: "case-after-otherwise",
			clauses: []Clause[*sample, string]{
				Otherwise(func(*sample) string { return "" }),
				caseInt(func(int) string { return "" }),
			},
			check: func(t *testing.T, err error) {
				var e *ClauseOrderError
				require.True(t, errors.As(err, &e))
				require.Equal(t, 1, e.Position)
			},
		},
		{
			name: "tag-out-of-range",
			clauses: []Clause[*sample, string]{
				Case(7, func(*sample) string { return "" }),
			},
			check: func(t *testing.T, err error) {
				var e *UnknownTagError
				require.True(t, errors.As(err, &e))
				require.Equal(t, 7, e.Tag)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catch(func() {
				Compose(3, sampleTag, tt.clauses...)
			})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestMatchUnknownTag(t *testing.T) {
	m := Compose(3, sampleTag, Otherwise(func(*sample) string { return "" }))

	err := catch(func() {
		m.Match(&sample{tag: 3})
	})
	var e *UnknownTagError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 3, e.Tag)
}

func TestClear(t *testing.T) {
	s := []int{1, 2, 3}
	Clear(&s)
	assert.Nil(t, s)

	p := struct{ X, Y int }{X: 1, Y: 2}
	Clear(&p)
	assert.Zero(t, p)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "union: alternative #2 requested while #0 is active", Mismatch(0, 2).Error())
	assert.Equal(t, "union: unknown tag #9", UnknownTag(9).Error())
	assert.Equal(
		t,
		"union: non-exhaustive match, no case for alternatives #0, #2",
		(&NonExhaustiveError{Missing: []int{0, 2}}).Error(),
	)
}

// catch runs fn and returns an error it panicked with
func catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = e
	}()
	fn()
	return nil
}
