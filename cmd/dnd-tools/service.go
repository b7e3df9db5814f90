package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/viper"

	"github.com/chpatton013/dnd-tools/internal/errors"
	"github.com/chpatton013/dnd-tools/internal/orchestrators/damage"
	"github.com/chpatton013/dnd-tools/internal/pkg/clock"
	"github.com/chpatton013/dnd-tools/internal/pkg/idgen"
	"github.com/chpatton013/dnd-tools/internal/repositories/catalog"
)

// newService wires the damage orchestrator from the loaded configuration
func newService() (damage.Service, error) {
	catalogRepo, err := catalog.NewYAML(&catalog.YAMLConfig{
		Path: viper.GetString(keyCatalog),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	eventBus := events.NewBus()
	eventBus.SubscribeFunc(events.EventAfterDamage, 0, logDamageRoll)

	svc, err := damage.NewOrchestrator(&damage.Config{
		CatalogRepo: catalogRepo,
		DiceRoller:  dice.DefaultRoller,
		EventBus:    eventBus,
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create damage service")
	}

	return svc, nil
}

func logDamageRoll(ctx context.Context, event events.Event) error {
	rollID, _ := event.Context().Get(damage.ContextKeyRollID)
	total, _ := event.Context().Get(damage.ContextKeyDamage)
	slog.DebugContext(ctx, "Damage rolled",
		"roll_id", rollID,
		"character", event.Source().GetID(),
		"damage", total,
	)
	return nil
}
