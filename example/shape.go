package example

//go:generate go-union shape.go

import (
	"github.com/sirkon/go-union/union"
)

type unionShape struct {
	Circle struct {
		R float64
	}
	Rect struct {
		W, H float64
	}
	Empty struct{}
}

// ShapeTag discriminant of Shape alternatives
type ShapeTag uint8

// Shape alternatives in declaration order
const (
	ShapeTagCircle ShapeTag = iota
	ShapeTagRect
	ShapeTagEmpty
)

const shapeAlternatives = 3

// Shape tagged union, holds exactly one of its alternatives at a time
type Shape struct {
	tag      ShapeTag
	asCircle ShapeCircle
	asRect   ShapeRect
	asEmpty  struct{}
}

// ShapeCircle payload of Circle alternative of Shape
type ShapeCircle struct {
	R float64
}

// ShapeRect payload of Rect alternative of Shape
type ShapeRect struct {
	W, H float64
}

// NewShape creates Shape with alternative tag holding v. Panics if v is not of the payload type of tag.
func NewShape(tag ShapeTag, v any) Shape {
	switch tag {
	case ShapeTagCircle:
		return NewShapeCircle(v.(ShapeCircle))
	case ShapeTagRect:
		return NewShapeRect(v.(ShapeRect))
	case ShapeTagEmpty:
		return NewShapeEmpty()
	}
	panic(union.UnknownTag(int(tag)))
}

// Clone returns a copy of u
func (u *Shape) Clone() Shape {
	switch u.tag {
	case ShapeTagCircle:
		return NewShapeCircle(u.asCircle)
	case ShapeTagRect:
		return NewShapeRect(u.asRect)
	case ShapeTagEmpty:
		return NewShapeEmpty()
	}
	panic(union.UnknownTag(int(u.tag)))
}

// Assign replaces u with a copy of other
func (u *Shape) Assign(other *Shape) {
	if u == other {
		return
	}

	u.drop()
	*u = other.Clone()
}

// Move moves the payload of other into u. other keeps its alternative with the zero payload.
func (u *Shape) Move(other *Shape) {
	if u == other {
		return
	}

	u.drop()
	*u = other.Clone()
	other.drop()
}

// drop releases the payload of the active alternative, the tag stays the same
func (u *Shape) drop() {
	switch u.tag {
	case ShapeTagCircle:
		union.Clear(&u.asCircle)
	case ShapeTagRect:
		union.Clear(&u.asRect)
	case ShapeTagEmpty:
		union.Clear(&u.asEmpty)
	default:
		panic(union.UnknownTag(int(u.tag)))
	}
}

func (u *Shape) tagIndex() int {
	return int(u.tag)
}

// Tag returns the active alternative
func (u *Shape) Tag() ShapeTag {
	return u.tag
}

// Holds checks if alternative tag is active
func (u *Shape) Holds(tag ShapeTag) bool {
	return u.tag == tag
}

// Ptr returns a pointer to the payload of alternative tag, nil if tag is not active
func (u *Shape) Ptr(tag ShapeTag) any {
	if u.tag != tag {
		return nil
	}

	switch tag {
	case ShapeTagCircle:
		return &u.asCircle
	case ShapeTagRect:
		return &u.asRect
	case ShapeTagEmpty:
		return &u.asEmpty
	}
	panic(union.UnknownTag(int(tag)))
}

// Get returns the payload of alternative tag. Panics if tag is not active.
func (u *Shape) Get(tag ShapeTag) any {
	if u.tag != tag {
		panic(union.Mismatch(int(u.tag), int(tag)))
	}

	switch tag {
	case ShapeTagCircle:
		return u.asCircle
	case ShapeTagRect:
		return u.asRect
	case ShapeTagEmpty:
		return u.asEmpty
	}
	panic(union.UnknownTag(int(tag)))
}

// Set replaces the active payload with v as alternative tag and returns a pointer to the new payload.
// Panics if v is not of the payload type of tag, u stays intact in this case.
func (u *Shape) Set(tag ShapeTag, v any) any {
	switch tag {
	case ShapeTagCircle:
		return u.SetCircle(v.(ShapeCircle))
	case ShapeTagRect:
		return u.SetRect(v.(ShapeRect))
	case ShapeTagEmpty:
		u.SetEmpty()
		return &u.asEmpty
	}
	panic(union.UnknownTag(int(tag)))
}

// NewShapeCircle creates Shape holding Circle
func NewShapeCircle(v ShapeCircle) Shape {
	return Shape{
		tag:      ShapeTagCircle,
		asCircle: v,
	}
}

// IsCircle checks if Circle is active
func (u *Shape) IsCircle() bool {
	return u.tag == ShapeTagCircle
}

// Circle returns Circle payload. Panics if Circle is not active.
func (u *Shape) Circle() ShapeCircle {
	if u.tag != ShapeTagCircle {
		panic(union.Mismatch(int(u.tag), int(ShapeTagCircle)))
	}

	return u.asCircle
}

// CirclePtr returns a pointer to Circle payload, nil if Circle is not active
func (u *Shape) CirclePtr() *ShapeCircle {
	if u.tag != ShapeTagCircle {
		return nil
	}

	return &u.asCircle
}

// TakeCircle moves Circle payload out leaving the zero value under the same tag. Panics if Circle is not active.
func (u *Shape) TakeCircle() ShapeCircle {
	v := u.Circle()
	union.Clear(&u.asCircle)
	return v
}

// SetCircle replaces the active payload with Circle v and returns a pointer to it
func (u *Shape) SetCircle(v ShapeCircle) *ShapeCircle {
	u.drop()
	u.tag = ShapeTagCircle
	u.asCircle = v
	return &u.asCircle
}

// ShapeCaseCircle match clause for Circle
func ShapeCaseCircle[R any](fn func(v ShapeCircle) R) union.Clause[*Shape, R] {
	return union.Case(int(ShapeTagCircle), func(u *Shape) R {
		return fn(u.asCircle)
	})
}

// NewShapeRect creates Shape holding Rect
func NewShapeRect(v ShapeRect) Shape {
	return Shape{
		tag:    ShapeTagRect,
		asRect: v,
	}
}

// IsRect checks if Rect is active
func (u *Shape) IsRect() bool {
	return u.tag == ShapeTagRect
}

// Rect returns Rect payload. Panics if Rect is not active.
func (u *Shape) Rect() ShapeRect {
	if u.tag != ShapeTagRect {
		panic(union.Mismatch(int(u.tag), int(ShapeTagRect)))
	}

	return u.asRect
}

// RectPtr returns a pointer to Rect payload, nil if Rect is not active
func (u *Shape) RectPtr() *ShapeRect {
	if u.tag != ShapeTagRect {
		return nil
	}

	return &u.asRect
}

// TakeRect moves Rect payload out leaving the zero value under the same tag. Panics if Rect is not active.
func (u *Shape) TakeRect() ShapeRect {
	v := u.Rect()
	union.Clear(&u.asRect)
	return v
}

// SetRect replaces the active payload with Rect v and returns a pointer to it
func (u *Shape) SetRect(v ShapeRect) *ShapeRect {
	u.drop()
	u.tag = ShapeTagRect
	u.asRect = v
	return &u.asRect
}

// ShapeCaseRect match clause for Rect
func ShapeCaseRect[R any](fn func(v ShapeRect) R) union.Clause[*Shape, R] {
	return union.Case(int(ShapeTagRect), func(u *Shape) R {
		return fn(u.asRect)
	})
}

// NewShapeEmpty creates Shape holding Empty
func NewShapeEmpty() Shape {
	return Shape{
		tag: ShapeTagEmpty,
	}
}

// IsEmpty checks if Empty is active
func (u *Shape) IsEmpty() bool {
	return u.tag == ShapeTagEmpty
}

// Empty returns Empty payload. Panics if Empty is not active.
func (u *Shape) Empty() struct{} {
	if u.tag != ShapeTagEmpty {
		panic(union.Mismatch(int(u.tag), int(ShapeTagEmpty)))
	}

	return u.asEmpty
}

// EmptyPtr returns a pointer to Empty payload, nil if Empty is not active
func (u *Shape) EmptyPtr() *struct{} {
	if u.tag != ShapeTagEmpty {
		return nil
	}

	return &u.asEmpty
}

// TakeEmpty moves Empty payload out leaving the zero value under the same tag. Panics if Empty is not active.
func (u *Shape) TakeEmpty() struct{} {
	v := u.Empty()
	union.Clear(&u.asEmpty)
	return v
}

// SetEmpty replaces the active payload with Empty
func (u *Shape) SetEmpty() {
	u.drop()
	u.tag = ShapeTagEmpty
}

// ShapeCaseEmpty match clause for Empty
func ShapeCaseEmpty[R any](fn func() R) union.Clause[*Shape, R] {
	return union.Case(int(ShapeTagEmpty), func(u *Shape) R {
		return fn()
	})
}

// ShapeVisitor handles every alternative of Shape
type ShapeVisitor[R any] interface {
	VisitCircle(v *ShapeCircle) R
	VisitRect(v *ShapeRect) R
	VisitEmpty() R
}

// VisitShape calls the method of v handling the active alternative of u
func VisitShape[R any](u *Shape, v ShapeVisitor[R]) R {
	switch u.tag {
	case ShapeTagCircle:
		return v.VisitCircle(&u.asCircle)
	case ShapeTagRect:
		return v.VisitRect(&u.asRect)
	case ShapeTagEmpty:
		return v.VisitEmpty()
	}
	panic(union.UnknownTag(int(u.tag)))
}

// ShapeOtherwise match clause for alternatives without an explicit case
func ShapeOtherwise[R any](fn func(u *Shape) R) union.Clause[*Shape, R] {
	return union.Otherwise(fn)
}

// NewShapeMatcher composes clauses into a reusable matcher. Panics on duplicate cases, misplaced
// otherwise clause or alternatives left without a case when there is no otherwise clause.
func NewShapeMatcher[R any](clauses ...union.Clause[*Shape, R]) *union.Matcher[*Shape, R] {
	return union.Compose(shapeAlternatives, (*Shape).tagIndex, clauses...)
}

// MatchShape matches u against clauses, see NewShapeMatcher
func MatchShape[R any](u *Shape, clauses ...union.Clause[*Shape, R]) R {
	return NewShapeMatcher(clauses...).Match(u)
}
