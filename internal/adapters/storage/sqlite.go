package storage

import (
	"context"
	"time"

	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// SQLiteAdapter implements ports.Storage using GORM and SQLite.
type SQLiteAdapter struct {
	db *gorm.DB
}

// ZoneModel is the GORM model for zones.
type ZoneModel struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Temperature  float64
	HotVotes     int
	ColdVotes    int
	ActiveVoters int
	LastUpdated  time.Time
}

// VoteEventModel is the GORM model for the append-only vote ledger.
type VoteEventModel struct {
	ID        string `gorm:"primaryKey"`
	ZoneID    string `gorm:"index"`
	VoteType  string
	Timestamp time.Time `gorm:"index"`
}

// TemperatureSampleModel is the GORM model for temperature history.
type TemperatureSampleModel struct {
	ID          string `gorm:"primaryKey"`
	ZoneID      string `gorm:"index"`
	Temperature float64
	Timestamp   time.Time `gorm:"index"`
}

// ConnectionModel is the GORM model for live session records.
type ConnectionModel struct {
	SessionID string    `gorm:"primaryKey"`
	LastSeen  time.Time `gorm:"index"`
}

// NewSQLiteAdapter initializes the database and migrates schema.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Trace storage queries alongside HTTP spans
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	// Auto Migrate
	if err := db.AutoMigrate(&ZoneModel{}, &VoteEventModel{}, &TemperatureSampleModel{}, &ConnectionModel{}); err != nil {
		return nil, err
	}

	// Composite index serving the recency and history range queries
	db.Exec("CREATE INDEX IF NOT EXISTS idx_votes_zone_time ON vote_event_models(zone_id, timestamp)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_samples_zone_time ON temperature_sample_models(zone_id, timestamp)")

	return &SQLiteAdapter{db: db}, nil
}

// ListZones retrieves all zones ordered by id.
func (a *SQLiteAdapter) ListZones(ctx context.Context) ([]domain.Zone, error) {
	var models []ZoneModel
	if err := a.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	zones := make([]domain.Zone, len(models))
	for i, m := range models {
		zones[i] = zoneToDomain(m)
	}
	return zones, nil
}

// GetZone retrieves a zone by id.
func (a *SQLiteAdapter) GetZone(ctx context.Context, id string) (*domain.Zone, error) {
	var model ZoneModel
	if err := a.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrZoneNotFound
		}
		return nil, err
	}
	zone := zoneToDomain(model)
	return &zone, nil
}

// UpdateZoneTemperature persists a computed temperature and its timestamp.
func (a *SQLiteAdapter) UpdateZoneTemperature(ctx context.Context, id string, temperature float64, at time.Time) error {
	res := a.db.WithContext(ctx).Model(&ZoneModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"temperature":  temperature,
		"last_updated": at,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

// SeedZones inserts the given zones if they do not already exist.
func (a *SQLiteAdapter) SeedZones(ctx context.Context, zones []domain.Zone) error {
	models := make([]ZoneModel, len(zones))
	for i, z := range zones {
		models[i] = zoneToModel(z)
	}

	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			DoNothing: true,
		}).Create(&models).Error
	})
}

// AppendVote records a vote event.
func (a *SQLiteAdapter) AppendVote(ctx context.Context, event domain.VoteEvent) error {
	model := voteToModel(event)
	return a.db.WithContext(ctx).Create(&model).Error
}

// VotesSince returns all events for the zone with timestamp >= since,
// oldest first.
func (a *SQLiteAdapter) VotesSince(ctx context.Context, zoneID string, since time.Time) ([]domain.VoteEvent, error) {
	var models []VoteEventModel
	err := a.db.WithContext(ctx).
		Where("zone_id = ? AND timestamp >= ?", zoneID, since).
		Order("timestamp").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	events := make([]domain.VoteEvent, len(models))
	for i, m := range models {
		events[i] = voteToDomain(m)
	}
	return events, nil
}

// SaveSample appends a temperature sample.
func (a *SQLiteAdapter) SaveSample(ctx context.Context, sample domain.TemperatureSample) error {
	model := sampleToModel(sample)
	return a.db.WithContext(ctx).Create(&model).Error
}

// ListSamples returns the most recent samples for a zone, newest first.
func (a *SQLiteAdapter) ListSamples(ctx context.Context, zoneID string, limit int) ([]domain.TemperatureSample, error) {
	var models []TemperatureSampleModel
	err := a.db.WithContext(ctx).
		Where("zone_id = ?", zoneID).
		Order("timestamp desc").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	samples := make([]domain.TemperatureSample, len(models))
	for i, m := range models {
		samples[i] = sampleToDomain(m)
	}
	return samples, nil
}

// TouchConnection upserts the record for sessionID.
func (a *SQLiteAdapter) TouchConnection(ctx context.Context, sessionID string, at time.Time) error {
	return a.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_seen": at}),
	}).Create(&ConnectionModel{SessionID: sessionID, LastSeen: at}).Error
}

// CountConnections returns the size of the current record set.
func (a *SQLiteAdapter) CountConnections(ctx context.Context) (int, error) {
	var count int64
	if err := a.db.WithContext(ctx).Model(&ConnectionModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeleteConnectionsBefore removes records last seen before cutoff.
func (a *SQLiteAdapter) DeleteConnectionsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res := a.db.WithContext(ctx).Where("last_seen < ?", cutoff).Delete(&ConnectionModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// Close closes the storage connection.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure interface compliance
var _ ports.Storage = (*SQLiteAdapter)(nil)
