package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	IsRemoved() bool
}

// BaseObject implements the tree plumbing of a GameObject.
// Types embedding it override Update and Draw.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childIndex
	removed  bool
}

type NewBaseObjectOpts struct {
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildIndex(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.objects
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id already exists")
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent marks the object for removal. UpdateTree detaches it
// from its parent once the parent's children have been updated.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object has no parent")
	}
	o.removed = true
	return nil
}

func (o *BaseObject) IsRemoved() bool {
	return o.removed
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

// childIndex keeps children in insertion order with a lookup by id.
type childIndex struct {
	objects      []GameObject
	idxIDObjects map[string]GameObject
}

func newChildIndex() *childIndex {
	return &childIndex{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *childIndex) Add(id string, child GameObject) {
	c.objects = append(c.objects, child)
	c.idxIDObjects[id] = child
}

func (c *childIndex) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childIndex) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.objects {
		if obj == child {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return
		}
	}
}
