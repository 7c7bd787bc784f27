package pad

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Store persists jump pads to a YAML file.
type Store struct {
	path string
}

// NewStore returns a Store reading from and writing to the file at the path passed.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the path of the file backing the Store.
func (s *Store) Path() string {
	return s.path
}

type storedPad struct {
	Name      string     `yaml:"name"`
	Position  [3]float64 `yaml:"position"`
	Yaw       float64    `yaml:"yaw"`
	Velocity  [3]float64 `yaml:"velocity"`
	Owner     string     `yaml:"owner"`
	OwnerName string     `yaml:"owner_name"`
}

type storedFile struct {
	JumpPads []storedPad `yaml:"jump_pads"`
}

// Load reads all jump pads from the file. A file that does not exist holds no jump pads.
func (s *Store) Load() ([]JumpPad, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var file storedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	pads := make([]JumpPad, 0, len(file.JumpPads))
	for _, sp := range file.JumpPads {
		owner, err := uuid.Parse(sp.Owner)
		if err != nil {
			return nil, fmt.Errorf("decode %s: jump pad %s: owner: %w", s.path, sp.Name, err)
		}
		pads = append(pads, JumpPad{
			Name:      sp.Name,
			Position:  mgl64.Vec3(sp.Position),
			Yaw:       sp.Yaw,
			Velocity:  mgl64.Vec3(sp.Velocity),
			Owner:     owner,
			OwnerName: sp.OwnerName,
		})
	}
	return pads, nil
}

// Save writes the jump pads passed to the file, replacing its previous contents. The file is written
// to a temporary file first so that a failed write never leaves a truncated file behind.
func (s *Store) Save(pads []JumpPad) error {
	file := storedFile{JumpPads: make([]storedPad, 0, len(pads))}
	for _, p := range pads {
		file.JumpPads = append(file.JumpPads, storedPad{
			Name:      p.Name,
			Position:  p.Position,
			Yaw:       p.Yaw,
			Velocity:  p.Velocity,
			Owner:     p.Owner.String(),
			OwnerName: p.OwnerName,
		})
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode jump pads: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
