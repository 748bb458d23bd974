package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	store *dataset.Store
}

func NewHealthCtrl(db *gorm.DB, store *dataset.Store) *HealthCtrl {
	return &HealthCtrl{db: db, store: store}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health fails only on the database. An empty dataset is reported but is a
// supported degraded mode, not an outage.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			db = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = sub{Err: "ping: " + err.Error()}
		}
	} else {
		db = sub{Err: "gorm db is nil"}
	}

	ds := map[string]any{"ok": false, "records": 0, "rejected": 0}
	if h.store != nil {
		ds = map[string]any{
			"ok":       h.store.Len() > 0,
			"source":   h.store.Source(),
			"records":  h.store.Len(),
			"rejected": len(h.store.Rejected()),
		}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"dataset":  ds,
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
