package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		SessionID: ev.SessionID,
		Action:    ev.Action,
		Outcome:   ev.Outcome,
		Phone:     ev.Phone,
		Metadata:  metaJSON,
	}

	return s.db.WithContext(ctx).Create(&entry).Error
}
