package services

import (
	"context"
	"time"

	"tokoadmin/internal/models"

	zlog "github.com/rs/zerolog/log"
)

// EventPublisher announces catalog changes to downstream consumers.
type EventPublisher interface {
	PublishCatalogChange(ctx context.Context, event models.ChangeEvent) error
}

// announce publishes a change event. Publishing is best effort: the mutation
// already succeeded, so failures are only logged.
func announce(ctx context.Context, p EventPublisher, storeID string, kind models.Kind, id string, action models.ChangeAction) {
	if p == nil {
		return
	}
	event := models.ChangeEvent{
		StoreID:    storeID,
		Kind:       kind,
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.PublishCatalogChange(ctx, event); err != nil {
		zlog.Warn().Err(err).
			Str("store_id", storeID).
			Str("kind", string(kind)).
			Str("entity_id", id).
			Msg("failed to publish catalog change")
	}
}
