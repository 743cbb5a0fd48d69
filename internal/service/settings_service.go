package service

import (
	"context"
	"encoding/json"

	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"

	"github.com/rs/zerolog"
)

// SettingsServiceImpl implements ports.SettingsStore on top of a snapshot
// store.
type SettingsServiceImpl struct {
	snapshots ports.SnapshotStore
	feed      ports.ChangeFeed
	log       zerolog.Logger
}

// NewSettingsService creates a new SettingsServiceImpl.
func NewSettingsService(snapshots ports.SnapshotStore, feed ports.ChangeFeed, log zerolog.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		snapshots: snapshots,
		feed:      feed,
		log:       log,
	}
}

// Load returns the stored settings, falling back to defaults when the
// snapshot is absent or malformed. Profile images saved by older versions
// under their own key are folded in when the settings carry none.
func (s *SettingsServiceImpl) Load(ctx context.Context) (domain.MerchantSettings, error) {
	raw, err := s.snapshots.Get(ctx, ports.KeySettings)
	if err != nil {
		return domain.DefaultSettings(), err
	}

	settings := domain.DecodeSettings(raw)

	if settings.ProfileImage == "" {
		logo, err := s.snapshots.Get(ctx, ports.KeyLogo)
		if err != nil {
			s.log.Warn().Err(err).Msg("legacy logo read failed")
		} else if len(logo) > 0 {
			settings.ProfileImage = string(logo)
		}
	}

	return settings, nil
}

// Save replaces the stored settings wholesale and broadcasts the change.
func (s *SettingsServiceImpl) Save(ctx context.Context, settings domain.MerchantSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	if err := s.snapshots.Set(ctx, ports.KeySettings, data); err != nil {
		s.log.Warn().Err(err).Msg("settings snapshot write failed")
		return nil
	}

	if err := s.feed.Publish(ctx); err != nil {
		s.log.Warn().Err(err).Msg("settings change broadcast failed")
	}
	return nil
}
