// File: space_optimized.go
// Author: momentics <momentics@gmail.com>
//
// Space-optimized adaptor. Adaptive presents the same container semantics
// as Buffer against a logical capacity while floating the allocated
// capacity between a configured minimum and that logical bound: doubling
// when a mutation would not fit, halving while occupancy stays under the
// shrink threshold. Allocation failures surface as errors, so the mutating
// API is error-returning where Buffer's is not.

package circbuf

import "github.com/momentics/circbuf/api"

// CapacityControl bounds the allocation of an Adaptive buffer. The zero
// tuning divisors select the defaults: a fifth of the capacity kept as
// growth headroom and shrinking while occupancy is below a third.
type CapacityControl struct {
	Capacity    int
	MinCapacity int

	// GrowthReserveDiv tunes ensureReserve: after a grow the free slice
	// must exceed capacity/GrowthReserveDiv or the capacity doubles again.
	GrowthReserveDiv int
	// ShrinkDiv tunes the halving loop: the capacity halves while
	// capacity/ShrinkDiv still covers the stored count.
	ShrinkDiv int
}

func (c CapacityControl) validate() error {
	if c.MinCapacity < 0 || c.Capacity < c.MinCapacity {
		return api.ErrInvalidArgument
	}
	return nil
}

func (c CapacityControl) reserveDiv() int {
	if c.GrowthReserveDiv == 0 {
		return 5
	}
	return c.GrowthReserveDiv
}

func (c CapacityControl) shrinkDiv() int {
	if c.ShrinkDiv == 0 {
		return 3
	}
	return c.ShrinkDiv
}

// Adaptive is a circular buffer whose allocated capacity tracks its
// occupancy within a CapacityControl envelope.
type Adaptive[T any] struct {
	buf  *Buffer[T]
	ctrl CapacityControl
}

// NewAdaptive creates an empty adaptive buffer allocated at the control's
// minimum capacity.
func NewAdaptive[T any](ctrl CapacityControl, opts ...Option[T]) (*Adaptive[T], error) {
	if err := ctrl.validate(); err != nil {
		return nil, err
	}
	buf, err := New[T](ctrl.MinCapacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Adaptive[T]{buf: buf, ctrl: ctrl}, nil
}

// NewAdaptiveFilled creates an adaptive buffer holding n copies of item,
// allocated just large enough for them.
func NewAdaptiveFilled[T any](ctrl CapacityControl, n int, item T, opts ...Option[T]) (*Adaptive[T], error) {
	if err := ctrl.validate(); err != nil {
		return nil, err
	}
	if n < 0 || n > ctrl.Capacity {
		return nil, api.ErrInvalidArgument
	}
	buf, err := NewFilled[T](initCapacity(ctrl, n), n, item, opts...)
	if err != nil {
		return nil, err
	}
	return &Adaptive[T]{buf: buf, ctrl: ctrl}, nil
}

// NewAdaptiveFromSlice creates an adaptive buffer seeded from items. When
// items exceeds the logical capacity only the most recent elements are
// kept.
func NewAdaptiveFromSlice[T any](ctrl CapacityControl, items []T, opts ...Option[T]) (*Adaptive[T], error) {
	if err := ctrl.validate(); err != nil {
		return nil, err
	}
	if len(items) > ctrl.Capacity {
		items = items[len(items)-ctrl.Capacity:]
	}
	buf, err := NewFromSlice[T](initCapacity(ctrl, len(items)), items, opts...)
	if err != nil {
		return nil, err
	}
	return &Adaptive[T]{buf: buf, ctrl: ctrl}, nil
}

func initCapacity(ctrl CapacityControl, n int) int {
	if n < ctrl.MinCapacity {
		return ctrl.MinCapacity
	}
	return n
}

// Len returns the number of elements currently stored.
func (a *Adaptive[T]) Len() int { return a.buf.Len() }

// Cap returns the logical capacity, the bound the allocation never
// exceeds.
func (a *Adaptive[T]) Cap() int { return a.ctrl.Capacity }

// InternalCapacity returns the currently allocated capacity.
func (a *Adaptive[T]) InternalCapacity() int { return a.buf.Cap() }

// Control returns the active capacity control.
func (a *Adaptive[T]) Control() CapacityControl { return a.ctrl }

// Empty reports whether no elements are stored.
func (a *Adaptive[T]) Empty() bool { return a.buf.Empty() }

// Full reports whether the stored count reached the logical capacity.
func (a *Adaptive[T]) Full() bool { return a.buf.Len() == a.ctrl.Capacity }

// Reserve returns how many elements fit before the logical capacity.
func (a *Adaptive[T]) Reserve() int { return a.ctrl.Capacity - a.buf.Len() }

// At returns the element at index, or ErrOutOfRange for an invalid index.
func (a *Adaptive[T]) At(index int) (T, error) { return a.buf.At(index) }

// Get returns the element at index. The caller guarantees the bounds.
func (a *Adaptive[T]) Get(index int) T { return a.buf.Get(index) }

// Set overwrites the element at index. The caller guarantees the bounds.
func (a *Adaptive[T]) Set(index int, item T) { a.buf.Set(index, item) }

// Front returns the oldest element. The buffer must not be empty.
func (a *Adaptive[T]) Front() T { return a.buf.Front() }

// Back returns the newest element. The buffer must not be empty.
func (a *Adaptive[T]) Back() T { return a.buf.Back() }

// Begin returns an iterator at the first element, End() when empty.
func (a *Adaptive[T]) Begin() Iterator[T] { return a.buf.Begin() }

// End returns the iterator one past the last element.
func (a *Adaptive[T]) End() Iterator[T] { return a.buf.End() }

// IterAt returns an iterator at the given logical index.
func (a *Adaptive[T]) IterAt(index int) Iterator[T] { return a.buf.IterAt(index) }

// Each calls fn for every element in logical order.
func (a *Adaptive[T]) Each(fn func(index int, item T)) { a.buf.Each(fn) }

// ArrayOne returns the first contiguous segment of the sequence.
func (a *Adaptive[T]) ArrayOne() []T { return a.buf.ArrayOne() }

// ArrayTwo returns the wrapped segment of the sequence.
func (a *Adaptive[T]) ArrayTwo() []T { return a.buf.ArrayTwo() }

// IsLinearized reports whether the sequence is a single contiguous run.
func (a *Adaptive[T]) IsLinearized() bool { return a.buf.IsLinearized() }

// Linearize rotates the sequence to the start of the allocated region and
// returns it as one slice.
func (a *Adaptive[T]) Linearize() []T { return a.buf.Linearize() }

// PushBack appends item, growing the allocation when needed. At logical
// capacity the front element is overwritten.
func (a *Adaptive[T]) PushBack(item T) error {
	if err := a.checkLowCapacity(1); err != nil {
		return err
	}
	a.buf.PushBack(item)
	return nil
}

// PushFront prepends item, growing the allocation when needed. At logical
// capacity the back element is overwritten.
func (a *Adaptive[T]) PushFront(item T) error {
	if err := a.checkLowCapacity(1); err != nil {
		return err
	}
	a.buf.PushFront(item)
	return nil
}

// PopBack removes and returns the newest element, shrinking the
// allocation when occupancy falls below the threshold.
func (a *Adaptive[T]) PopBack() (T, error) {
	item := a.buf.PopBack()
	if err := a.checkHighCapacity(); err != nil {
		return item, err
	}
	return item, nil
}

// PopFront removes and returns the oldest element, shrinking the
// allocation when occupancy falls below the threshold.
func (a *Adaptive[T]) PopFront() (T, error) {
	item := a.buf.PopFront()
	if err := a.checkHighCapacity(); err != nil {
		return item, err
	}
	return item, nil
}

// Insert places item before pos under Buffer.Insert semantics against the
// logical capacity. The returned iterator addresses the written element.
func (a *Adaptive[T]) Insert(pos Iterator[T], item T) (Iterator[T], error) {
	index := pos.Index()
	if err := a.checkLowCapacity(1); err != nil {
		return Iterator[T]{}, err
	}
	return a.buf.Insert(a.buf.IterAt(index), item), nil
}

// InsertN places n copies of item before pos under the Buffer.InsertN
// truncation policy against the logical capacity.
func (a *Adaptive[T]) InsertN(pos Iterator[T], n int, item T) error {
	index := pos.Index()
	if err := a.checkLowCapacity(n); err != nil {
		return err
	}
	a.buf.InsertN(a.buf.IterAt(index), n, item)
	return nil
}

// InsertRange places a copy of items before pos, keeping the most recent
// elements when the range does not fit.
func (a *Adaptive[T]) InsertRange(pos Iterator[T], items []T) error {
	index := pos.Index()
	if err := a.checkLowCapacity(len(items)); err != nil {
		return err
	}
	a.buf.InsertRange(a.buf.IterAt(index), items)
	return nil
}

// RInsert places item before pos, evicting from the tail when logically
// full.
func (a *Adaptive[T]) RInsert(pos Iterator[T], item T) (Iterator[T], error) {
	index := pos.Index()
	if err := a.checkLowCapacity(1); err != nil {
		return Iterator[T]{}, err
	}
	return a.buf.RInsert(a.buf.IterAt(index), item), nil
}

// RInsertN places n copies of item before pos under the Buffer.RInsertN
// truncation policy against the logical capacity.
func (a *Adaptive[T]) RInsertN(pos Iterator[T], n int, item T) error {
	index := pos.Index()
	if err := a.checkLowCapacity(n); err != nil {
		return err
	}
	a.buf.RInsertN(a.buf.IterAt(index), n, item)
	return nil
}

// RInsertRange places a copy of items before pos, keeping the leading
// elements when the range does not fit.
func (a *Adaptive[T]) RInsertRange(pos Iterator[T], items []T) error {
	index := pos.Index()
	if err := a.checkLowCapacity(len(items)); err != nil {
		return err
	}
	a.buf.RInsertRange(a.buf.IterAt(index), items)
	return nil
}

// Erase removes the element at pos and returns an iterator to the element
// that took its place.
func (a *Adaptive[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	it := a.buf.Erase(pos)
	index := it.Index()
	if err := a.checkHighCapacity(); err != nil {
		return Iterator[T]{}, err
	}
	return a.buf.IterAt(index), nil
}

// EraseRange removes the elements in [from, to).
func (a *Adaptive[T]) EraseRange(from, to Iterator[T]) (Iterator[T], error) {
	it := a.buf.EraseRange(from, to)
	index := it.Index()
	if err := a.checkHighCapacity(); err != nil {
		return Iterator[T]{}, err
	}
	return a.buf.IterAt(index), nil
}

// RErase removes the element at pos by shifting the head toward the tail.
func (a *Adaptive[T]) RErase(pos Iterator[T]) (Iterator[T], error) {
	it := a.buf.RErase(pos)
	index := it.Index()
	if err := a.checkHighCapacity(); err != nil {
		return Iterator[T]{}, err
	}
	return a.buf.IterAt(index), nil
}

// REraseRange removes the elements in [from, to) by shifting the head
// toward the tail.
func (a *Adaptive[T]) REraseRange(from, to Iterator[T]) (Iterator[T], error) {
	it := a.buf.REraseRange(from, to)
	index := it.Index()
	if err := a.checkHighCapacity(); err != nil {
		return Iterator[T]{}, err
	}
	return a.buf.IterAt(index), nil
}

// Resize changes the stored count, raising the logical capacity when the
// new size exceeds it. A shrink removes the newest elements.
func (a *Adaptive[T]) Resize(newSize int, item T) error {
	if newSize < 0 {
		return api.ErrInvalidArgument
	}
	if newSize > a.buf.Len() {
		if newSize > a.ctrl.Capacity {
			a.ctrl.Capacity = newSize
		}
		return a.InsertN(a.End(), newSize-a.buf.Len(), item)
	}
	_, err := a.EraseRange(a.IterAt(newSize), a.End())
	return err
}

// RResize changes the stored count, growing at the front. A shrink
// removes the oldest elements.
func (a *Adaptive[T]) RResize(newSize int, item T) error {
	if newSize < 0 {
		return api.ErrInvalidArgument
	}
	if newSize > a.buf.Len() {
		if newSize > a.ctrl.Capacity {
			a.ctrl.Capacity = newSize
		}
		return a.RInsertN(a.Begin(), newSize-a.buf.Len(), item)
	}
	_, err := a.REraseRange(a.Begin(), a.IterAt(a.buf.Len()-newSize))
	return err
}

// SetCapacity installs a new capacity control. When the logical capacity
// falls below the stored count the oldest excess elements are removed, so
// the most recent ones survive, matching Buffer.SetCapacity.
func (a *Adaptive[T]) SetCapacity(ctrl CapacityControl) error {
	if err := ctrl.validate(); err != nil {
		return err
	}
	a.ctrl = ctrl
	if ctrl.Capacity < a.buf.Len() {
		a.buf.REraseRange(a.buf.Begin(), a.buf.IterAt(a.buf.Len()-ctrl.Capacity))
	}
	return a.adjustMinCapacity()
}

// RSetCapacity installs a new capacity control, removing the newest
// excess elements when the logical capacity falls below the stored count,
// matching Buffer.RSetCapacity.
func (a *Adaptive[T]) RSetCapacity(ctrl CapacityControl) error {
	if err := ctrl.validate(); err != nil {
		return err
	}
	a.ctrl = ctrl
	if ctrl.Capacity < a.buf.Len() {
		a.buf.EraseRange(a.buf.IterAt(ctrl.Capacity), a.buf.End())
	}
	return a.adjustMinCapacity()
}

func (a *Adaptive[T]) adjustMinCapacity() error {
	if a.ctrl.MinCapacity > a.buf.Cap() {
		return a.buf.SetCapacity(a.ctrl.MinCapacity)
	}
	return a.checkHighCapacity()
}

// Clear removes all elements and shrinks the allocation to the minimum
// capacity.
func (a *Adaptive[T]) Clear() error {
	a.buf.Clear()
	return a.checkHighCapacity()
}

// Swap exchanges contents and capacity controls of two adaptive buffers
// in O(1).
func (a *Adaptive[T]) Swap(other *Adaptive[T]) {
	a.buf.Swap(other.buf)
	a.ctrl, other.ctrl = other.ctrl, a.ctrl
}

// Release returns the backing region to the allocator. The buffer must
// not be used afterwards.
func (a *Adaptive[T]) Release() { a.buf.Release() }

// checkLowCapacity grows the allocation ahead of n additions: the
// allocated capacity doubles until the new size fits, then ensureReserve
// pads and clamps it. At the logical capacity no growth happens and the
// wrapped buffer evicts instead.
func (a *Adaptive[T]) checkLowCapacity(n int) error {
	newSize := a.buf.Len() + n
	newCap := a.buf.Cap()
	if newSize <= newCap {
		return nil
	}
	if newCap == 0 {
		newCap = 1
	}
	for ; newSize > newCap; newCap *= 2 {
	}
	return a.buf.SetCapacity(a.ensureReserve(newCap, newSize))
}

// checkHighCapacity halves the allocation while occupancy stays below
// capacity/shrinkDiv, floored at the minimum capacity. No headroom rule
// here: shrinking must not bounce the capacity back up.
func (a *Adaptive[T]) checkHighCapacity() error {
	newCap := a.buf.Cap()
	for newCap/a.ctrl.shrinkDiv() >= a.buf.Len() {
		newCap /= 2
		if newCap <= a.ctrl.MinCapacity {
			newCap = a.ctrl.MinCapacity
			break
		}
	}
	return a.buf.SetCapacity(newCap)
}

// ensureReserve keeps a growth headroom after capacity adjustments and
// clamps the result to the logical capacity.
func (a *Adaptive[T]) ensureReserve(newCap, size int) int {
	if size+newCap/a.ctrl.reserveDiv() >= newCap {
		newCap *= 2
	}
	if newCap > a.ctrl.Capacity {
		return a.ctrl.Capacity
	}
	return newCap
}
