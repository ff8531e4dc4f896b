package store

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"enrollify/internal/models"
)

// FileStore keeps every record in a single JSON array on disk, rewritten
// whole on each append. There is no locking: two concurrent appends race and
// the later write wins. That matches the storage contract as specified; any
// added locking would be a behavior change.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Init seeds the backing file with an empty array if it does not exist yet.
func (s *FileStore) Init(ctx context.Context) error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(s.path, []byte("[]"), 0644)
}

// Load reads the whole array. A missing, unreadable or corrupt file is
// logged and treated as empty rather than failing the caller: reads stay
// available even if the file is damaged.
func (s *FileStore) Load(ctx context.Context) ([]models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("store: reading %s: %v", s.path, err)
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("store: %s does not contain a valid user array: %v", s.path, err)
		return []models.User{}, nil
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Append loads the current array, adds user at the end and rewrites the
// file pretty-printed with two-space indentation.
func (s *FileStore) Append(ctx context.Context, user models.User) error {
	users, err := s.Load(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// FindByCNIC scans in append order and returns the first record whose cnic
// matches. Duplicates are possible and tolerated.
func (s *FileStore) FindByCNIC(ctx context.Context, cnic string) (models.User, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.CNIC == cnic {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}
