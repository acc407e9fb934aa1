package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SessionID string `gorm:"size:64;index" json:"session_id"`
	Action    string `gorm:"size:50;not null" json:"action"`
	Outcome   string `gorm:"size:20;not null" json:"outcome"`

	Phone    string `gorm:"size:32;index" json:"phone"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
