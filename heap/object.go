package heap

import "fmt"

// Object is a mutable view of one object. It stays meaningful only until the
// next collection, which may move a different object into the same slot.
type Object struct {
	h   *Heap
	ref Ref
	end Ref
}

// View returns an Object for r after checking it against end, the current
// allocation cursor.
func (h *Heap) View(r, end Ref) (Object, error) {
	if err := h.Check(r, end); err != nil {
		return Object{}, err
	}
	return Object{h: h, ref: r, end: end}, nil
}

// Ref returns the address the view was taken at.
func (o Object) Ref() Ref { return o.ref }

// Kind returns the object kind.
func (o Object) Kind() Kind { return o.h.Kind(o.ref) }

// Int returns the value of an int object.
func (o Object) Int() (int64, error) {
	if err := o.want(KindInt); err != nil {
		return 0, err
	}
	return o.h.Int(o.ref), nil
}

// SetInt replaces the value of an int object.
func (o Object) SetInt(v int64) error {
	if err := o.want(KindInt); err != nil {
		return err
	}
	o.h.SetInt(o.ref, v)
	return nil
}

// Head returns the head field of a pair.
func (o Object) Head() (Ref, error) {
	if err := o.want(KindPair); err != nil {
		return Nil, err
	}
	return o.h.Head(o.ref), nil
}

// Tail returns the tail field of a pair.
func (o Object) Tail() (Ref, error) {
	if err := o.want(KindPair); err != nil {
		return Nil, err
	}
	return o.h.Tail(o.ref), nil
}

// SetHead stores v (which may be Nil) in the head field of a pair.
func (o Object) SetHead(v Ref) error {
	if err := o.field(v); err != nil {
		return err
	}
	o.h.SetHead(o.ref, v)
	return nil
}

// SetTail stores v (which may be Nil) in the tail field of a pair.
func (o Object) SetTail(v Ref) error {
	if err := o.field(v); err != nil {
		return err
	}
	o.h.SetTail(o.ref, v)
	return nil
}

func (o Object) want(k Kind) error {
	if got := o.Kind(); got != k {
		return fmt.Errorf("%w: %s is %s, want %s", ErrKindMismatch, o.ref, got, k)
	}
	return nil
}

func (o Object) field(v Ref) error {
	if err := o.want(KindPair); err != nil {
		return err
	}
	if v.IsNil() {
		return nil
	}
	return o.h.Check(v, o.end)
}
