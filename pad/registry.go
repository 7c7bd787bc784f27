package pad

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jumppad-df/jumppad/jperror"
	"github.com/sasha-s/go-deadlock"
)

var (
	// ErrNameExists is returned when a jump pad is added with a name that is already taken.
	ErrNameExists = jperror.New("jump pad already exists")
	// ErrPositionTaken is returned when a jump pad is added on a block already occupied by another pad.
	ErrPositionTaken = jperror.New("block is already occupied by a jump pad")
	// ErrUnknownPad is returned when a jump pad referred to by name does not exist.
	ErrUnknownPad = jperror.New("unknown jump pad")
)

// Registry holds all jump pads, indexed both by name and by the block they occupy. At most one jump pad
// exists per block and names are unique. Registry is safe for concurrent use.
type Registry struct {
	mu      deadlock.RWMutex
	byName  *orderedmap.OrderedMap[string, JumpPad]
	byBlock map[cube.Pos]string
}

// NewRegistry returns a Registry holding the jump pads passed. Pads are kept in the order passed, and
// an error is returned if two of them share a name or a block.
func NewRegistry(pads ...JumpPad) (*Registry, error) {
	r := &Registry{
		byName:  orderedmap.NewOrderedMap[string, JumpPad](),
		byBlock: make(map[cube.Pos]string),
	}
	for _, p := range pads {
		if err := r.Add(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add adds a new jump pad to the registry.
func (r *Registry) Add(p JumpPad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName.Get(p.Name); ok {
		return fmt.Errorf("%w: %s", ErrNameExists, p.Name)
	}
	if other, ok := r.byBlock[p.BlockPos()]; ok {
		return fmt.Errorf("%w: %s", ErrPositionTaken, other)
	}
	r.byName.Set(p.Name, p)
	r.byBlock[p.BlockPos()] = p.Name
	return nil
}

// Update replaces the jump pad with the same name as the one passed. The pad may move to another block
// as long as that block is free.
func (r *Registry) Update(p JumpPad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byName.Get(p.Name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPad, p.Name)
	}
	if other, ok := r.byBlock[p.BlockPos()]; ok && other != p.Name {
		return fmt.Errorf("%w: %s", ErrPositionTaken, other)
	}
	delete(r.byBlock, old.BlockPos())
	r.byName.Set(p.Name, p)
	r.byBlock[p.BlockPos()] = p.Name
	return nil
}

// Remove removes the jump pad with the name passed and returns it.
func (r *Registry) Remove(name string) (JumpPad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byName.Get(name)
	if !ok {
		return JumpPad{}, fmt.Errorf("%w: %s", ErrUnknownPad, name)
	}
	r.byName.Delete(name)
	delete(r.byBlock, p.BlockPos())
	return p, nil
}

// ByPosition returns the jump pad occupying the block at the position passed, if any.
func (r *Registry) ByPosition(pos mgl64.Vec3) (JumpPad, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byBlock[cube.PosFromVec3(pos)]
	if !ok {
		return JumpPad{}, false
	}
	return r.byName.Get(name)
}

// ByName returns the jump pad with the name passed, if any.
func (r *Registry) ByName(name string) (JumpPad, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName.Get(name)
}

// All returns every jump pad in the order they were added.
func (r *Registry) All() []JumpPad {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pads := make([]JumpPad, 0, r.byName.Len())
	for el := r.byName.Front(); el != nil; el = el.Next() {
		pads = append(pads, el.Value)
	}
	return pads
}

// Len returns the amount of jump pads in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName.Len()
}
