package objects

import (
	"slices"
	"sort"
)

// SortedZIndexObject updates and draws its children from the lowest z-index up.
// Children sharing a z-index keep the order they were added in.
type SortedZIndexObject struct {
	*BaseObject

	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if err := o.BaseObject.AddChild(id, child); err != nil {
		return err
	}
	child.SetParent(o)

	i := sort.Search(len(o.sorted), func(i int) bool {
		return o.sorted[i].GetZIndex() > child.GetZIndex()
	})
	o.sorted = slices.Insert(o.sorted, i, child)
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if err := o.BaseObject.RemoveChild(id); err != nil {
		return err
	}
	o.sorted = slices.DeleteFunc(o.sorted, func(obj GameObject) bool {
		return obj == child
	})
	return nil
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
