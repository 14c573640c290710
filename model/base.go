package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record holds the identity and timestamps shared by every collection.
type Record struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not supply one.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// StringSet is a set of strings persisted as a JSON array in a text column.
type StringSet []string

// NewStringSet trims, drops empty values and removes duplicates, keeping order.
func NewStringSet(values ...string) StringSet {
	seen := make(map[string]struct{}, len(values))
	set := make(StringSet, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return set
}

// Has reports whether v is a member of the set.
func (s StringSet) Has(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// Sorted returns a sorted copy.
func (s StringSet) Sorted() []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func (s StringSet) String() string {
	return strings.Join(s, ", ")
}

// Value implements driver.Valuer.
func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *StringSet) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = StringSet{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("model: cannot scan %T into StringSet", value)
	}
	if len(raw) == 0 {
		*s = StringSet{}
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return errors.New("model: invalid StringSet payload")
	}
	*s = NewStringSet(values...)
	return nil
}

// GormDataType keeps the column a plain text column on every dialect.
func (StringSet) GormDataType() string {
	return "text"
}
