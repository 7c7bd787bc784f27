package permission

import (
	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"
)

const (
	// PermissionJump is granted once a player has acknowledged the rules and allows jump pads to launch
	// them.
	PermissionJump uint64 = 1 << iota
	PermissionAdd
	PermissionEdit
	PermissionRemove
	PermissionGoto
	PermissionList

	// PermissionAdmin holds every permission needed to manage jump pads.
	PermissionAdmin = PermissionAdd | PermissionEdit | PermissionRemove | PermissionGoto | PermissionList
)

var names = map[uint64]string{
	PermissionJump:   "jumppad.jump",
	PermissionAdd:    "jumppad.add",
	PermissionEdit:   "jumppad.edit",
	PermissionRemove: "jumppad.remove",
	PermissionGoto:   "jumppad.goto",
	PermissionList:   "jumppad.list",
}

// Name returns the name of a single permission, such as "jumppad.add".
func Name(perm uint64) string {
	if n, ok := names[perm]; ok {
		return n
	}
	return "unknown"
}

// Store holds the permissions granted to players for the current session. Permissions are not
// persisted: a player that reconnects starts without any. Store is safe for concurrent use.
type Store struct {
	mu    deadlock.RWMutex
	perms map[uuid.UUID]uint64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{perms: make(map[uuid.UUID]uint64)}
}

// AddPerm grants the permissions passed to a player.
func (s *Store) AddPerm(id uuid.UUID, perm uint64) {
	s.mu.Lock()
	s.perms[id] = s.perms[id] | perm
	s.mu.Unlock()
}

// RemovePerm revokes the permissions passed from a player.
func (s *Store) RemovePerm(id uuid.UUID, perm uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.perms[id] &^ perm; p != 0 {
		s.perms[id] = p
	} else {
		delete(s.perms, id)
	}
}

// HasPerm returns true if the player holds every permission passed.
func (s *Store) HasPerm(id uuid.UUID, perm uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perms[id]&perm == perm
}

// HasAcknowledgedRules returns true if the player was granted PermissionJump by reading the rules.
func (s *Store) HasAcknowledgedRules(id uuid.UUID) bool {
	return s.HasPerm(id, PermissionJump)
}

// Purge revokes every permission of a player.
func (s *Store) Purge(id uuid.UUID) {
	s.mu.Lock()
	delete(s.perms, id)
	s.mu.Unlock()
}
