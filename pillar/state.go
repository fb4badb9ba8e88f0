package pillar

import (
	"encoding/json"
	"os"
)

// State is the single flat record persisted between runs. LastDate is an ISO
// calendar date ("2006-01-02"); empty means the rotation has never run, and
// CurrentIndex is -1 in that case.
type State struct {
	LastDate     string `json:"last_date"`
	CurrentIndex int    `json:"current_pillar_index"`
}

// DefaultState is the never-run state.
func DefaultState() State {
	return State{LastDate: "", CurrentIndex: -1}
}

// valid reports whether the record can drive the rotation. An index outside the
// catalog (other than the initial -1) means the file was tampered with or
// written by something else, and is treated the same as a corrupt file.
func (s State) valid() bool {
	if s.CurrentIndex == -1 {
		return s.LastDate == ""
	}
	return s.CurrentIndex >= 0 && s.CurrentIndex < Count
}

// Store abstracts the persistence of the rotation record so the scheduler never
// touches the filesystem directly.
type Store interface {
	Load() (State, error)
	Save(State) error
}

// FileStore keeps the record as a small JSON object on disk. Load is fail-open:
// a missing, unreadable, or corrupt file yields the default state rather than an
// error, since the rotation is low-stakes and self-healing.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load() (State, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return DefaultState(), nil
	}
	var st State
	st.CurrentIndex = -1 // absent key reads as never-run, not pillar 0
	if err := json.Unmarshal(data, &st); err != nil {
		return DefaultState(), nil
	}
	if !st.valid() {
		return DefaultState(), nil
	}
	return st, nil
}

func (f *FileStore) Save(st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}
