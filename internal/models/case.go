package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// StringList stores an ordered list of short strings as a JSON text column.
// Order and duplicates are preserved verbatim.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported source for StringList")
	}
}

// Case is a customer success story shown on the cases page.
type Case struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CustomerName string         `gorm:"size:100;not null" json:"customer_name"`
	ServiceName  string         `gorm:"size:255;not null" json:"service_name"`
	Achievement  string         `gorm:"size:255" json:"achievement"`
	Comment      string         `gorm:"type:text" json:"comment"`
	Rating       int            `gorm:"not null;default:5" json:"rating"` // 3..5
	Highlights   StringList     `gorm:"type:json" json:"highlights"`
	Status       string         `gorm:"size:20;not null;default:已发布;index" json:"status"` // 已发布 | 草稿
	SortOrder    int            `gorm:"not null;default:0" json:"sort_order"`
	CaseDate     *time.Time     `json:"case_date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Case) TableName() string { return "cases" }
