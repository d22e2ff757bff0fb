package analytics

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dalevdmerwe/salon-booking/internal/metrics"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

// Visit is one page view on a tenant's public booking page.
type Visit struct {
	TenantID   string
	PagePath   string
	Referrer   string
	UserAgent  string
	SessionID  string
	VisitorID  string
	DeviceType string
	Browser    string
	OS         string
}

// Store persists visits.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(v Visit) error {
	row := models.SiteVisit{
		TenantID:   v.TenantID,
		PagePath:   v.PagePath,
		Referrer:   v.Referrer,
		UserAgent:  v.UserAgent,
		SessionID:  v.SessionID,
		VisitorID:  v.VisitorID,
		DeviceType: v.DeviceType,
		Browser:    v.Browser,
		OS:         v.OS,
	}

	return s.db.Create(&row).Error
}

type recorder interface {
	Record(v Visit) error
}

// Dispatcher records visits off the request path through a buffered
// queue. Tracking is advisory: when the queue is full the visit is
// dropped rather than ever slowing down or failing a request.
type Dispatcher struct {
	store recorder
	queue chan Visit
	log   zerolog.Logger
}

func NewDispatcher(store recorder, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Visit, 256),
		log:   log.With().Str("component", "analytics").Logger(),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for v := range d.queue {
		if err := d.store.Record(v); err != nil {
			d.log.Error().Err(err).Str("tenant_id", v.TenantID).Msg("visit record failed")
		}
	}
}

func (d *Dispatcher) Dispatch(v Visit) {
	select {
	case d.queue <- v:
		metrics.IncVisitTracked()
	default:
		metrics.IncVisitDropped()
		d.log.Warn().Str("tenant_id", v.TenantID).Msg("visit queue full, dropping")
	}
}
