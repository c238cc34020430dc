package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type Lifecycle interface {
	// Game flow methods
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// InitTree initializes the object and then its children.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of the object and then the object.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", obj.GetID(), err)
	}
	return nil
}

// UpdateTree updates the object and then its children, detaching any
// child that removed itself during the update.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", obj.GetID(), err)
	}

	var removed []string
	for _, child := range obj.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
		if child.IsRemoved() {
			removed = append(removed, child.GetID())
		}
	}
	for _, id := range removed {
		if err := obj.RemoveChild(id); err != nil {
			return fmt.Errorf("failed to remove child %s: %v", id, err)
		}
	}

	return nil
}

// DrawTree draws the object and then its children on top.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
