package schema

import (
	"go/scanner"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapeSource = `package shapes

import (
	stdtime "time"
)

type unionShape struct {
	Circle struct {
		R float64
	}
	Rect struct {
		W, H float64
	}
	Empty    struct{}
	From, To stdtime.Time
}

type unrelated struct {
	Field int
}
`

func TestFromGo(t *testing.T) {
	u, err := FromGo("shapes.go", []byte(shapeSource), "")
	require.NoError(t, err)

	assert.Equal(t, "shapes", u.Package)
	assert.Equal(t, "Shape", u.Name)
	assert.Equal(t, "unionShape", u.DefinitionName)
	assert.Equal(t, OriginGo, u.Origin)
	assert.Equal(t, []Import{{Name: "stdtime", Path: "time"}}, u.Imports)
	assert.True(t, strings.HasPrefix(u.Definition, "type unionShape struct {"), u.Definition)

	var names []string
	for _, a := range u.Alternatives {
		names = append(names, a.Name)
	}
	require.Equal(t, []string{"Circle", "Rect", "Empty", "From", "To"}, names)

	circle := u.Alternatives[0]
	assert.True(t, circle.Struct)
	assert.False(t, circle.Unit)
	assert.Equal(t, "ShapeCircle", u.Payload(circle))
	assert.Equal(t, 8, circle.Pos.Line)

	empty := u.Alternatives[2]
	assert.True(t, empty.Unit)
	assert.False(t, empty.Struct)
	assert.Equal(t, "struct{}", u.Payload(empty))

	from := u.Alternatives[3]
	assert.Equal(t, "stdtime.Time", from.Type)
	assert.Equal(t, "stdtime.Time", u.Payload(from))
	assert.Equal(t, u.Alternatives[4].Type, from.Type)

	assert.Equal(t, "ShapeTag", u.TagType())
	assert.Equal(t, "ShapeTagRect", u.TagConst(u.Alternatives[1]))
	assert.Equal(t, "asRect", u.Alternatives[1].Field())
	assert.Equal(t, "shapeAlternatives", u.Count())
}

func TestFromGoCustomPrefix(t *testing.T) {
	src := `package p

type sumResult struct {
	Value   string
	Failure error
}
`
	u, err := FromGo("result.go", []byte(src), "sum")
	require.NoError(t, err)
	assert.Equal(t, "Result", u.Name)
	assert.Len(t, u.Alternatives, 2)
}

func TestFromGoErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "syntax",
			src:  "package p\n\ntype unionX struct {\n",
			want: "expected",
		},
		{
			name: "no-definition",
			src:  "package p\n\ntype X struct{ A int }\n",
			want: "no union<Name> union definitions found",
		},
		{
			name: "duplicate-definition",
			src:  "package p\n\ntype unionX struct{ A int }\n\ntype unionY struct{ B int }\n",
			want: "duplicate union definition",
		},
		{
			name: "embedding",
			src:  "package p\n\ntype unionX struct {\n\tfmt.Stringer\n\tA int\n}\n",
			want: "embedding is not allowed",
		},
		{
			name: "branch-name",
			src:  "package p\n\ntype unionX struct {\n\tindex int\n}\n",
			want: "invalid alternative name index, must be Index",
		},
		{
			name: "union-name",
			src:  "package p\n\ntype unionmyUnion struct {\n\tA int\n}\n",
			want: "invalid union name myUnion, must be MyUnion",
		},
		{
			name: "duplicate-alternative",
			src:  "package p\n\ntype unionX struct {\n\tA int\n\tA string\n}\n",
			want: "duplicate alternative A",
		},
		{
			name: "collision-with-union-method",
			src:  "package p\n\ntype unionX struct {\n\tTag int\n}\n",
			want: "generated method X.Tag collides with the one of union X",
		},
		{
			name: "collision-between-alternatives",
			src:  "package p\n\ntype unionX struct {\n\tA int\n\tAPtr int\n}\n",
			want: "collides with the one of alternative A",
		},
		{
			name: "recursive",
			src:  "package p\n\ntype unionTree struct {\n\tLeaf int\n\tNode []*Tree\n}\n",
			want: "recursive alternatives are not supported, type refers to Tree",
		},
		{
			name: "recursive-definition",
			src:  "package p\n\ntype unionTree struct {\n\tLeaf int\n\tNode map[string]unionTree\n}\n",
			want: "type refers to unionTree",
		},
		{
			name: "empty",
			src:  "package p\n\ntype unionX struct{}\n",
			want: "union X has no alternatives",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGo("input.go", []byte(tt.src), "")
			require.Error(t, err)
			requireErrorContains(t, err, tt.want)
		})
	}
}

func TestFromGoQualifiedNameIsNotRecursive(t *testing.T) {
	src := "package p\n\nimport \"other\"\n\ntype unionTree struct {\n\tLeaf  int\n\tOther other.Tree\n}\n"
	_, err := FromGo("input.go", []byte(src), "")
	require.NoError(t, err)
}

func TestFromGoFieldNamedAfterUnion(t *testing.T) {
	src := "package p\n\ntype unionEvent struct {\n\tWrapped struct {\n\t\tEvent string\n\t}\n\tHandler func(Event int) error\n}\n"
	u, err := FromGo("input.go", []byte(src), "")
	require.NoError(t, err)
	require.Len(t, u.Alternatives, 2)

	src = "package p\n\ntype unionEvent struct {\n\tWrapped struct {\n\t\tEvent *Event\n\t}\n}\n"
	_, err = FromGo("input.go", []byte(src), "")
	requireErrorContains(t, err, "type refers to Event")
}

// requireErrorContains checks one of errors in err has substr in its message
func requireErrorContains(t *testing.T, err error, substr string) {
	t.Helper()

	if list, ok := err.(scanner.ErrorList); ok {
		var msgs []string
		for _, e := range list {
			if strings.Contains(e.Msg, substr) {
				return
			}
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("no error contains %q, got:\n%s", substr, strings.Join(msgs, "\n"))
	}

	require.Contains(t, err.Error(), substr)
}
