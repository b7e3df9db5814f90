// Package srd imports weapon damage profiles from the D&D 5e SRD API
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/chpatton013/dnd-tools/internal/clients/srd Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/chpatton013/dnd-tools/internal/errors"
)

// Weapon categories understood by ListWeapons
const (
	CategorySimpleWeapons  = "simple-weapons"
	CategoryMartialWeapons = "martial-weapons"
)

// Client defines the interface for SRD weapon lookups
type Client interface {
	// GetWeapon fetches one weapon by its SRD index, e.g. "warhammer"
	GetWeapon(ctx context.Context, weaponID string) (*WeaponData, error)

	// ListWeapons returns every weapon in an equipment category
	ListWeapons(ctx context.Context, category string) ([]*WeaponData, error)
}

// WeaponData is the damage-relevant part of an SRD weapon
type WeaponData struct {
	ID         string
	Name       string
	Category   string
	Range      string
	DamageDice string
	DamageType string
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the SRD client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new SRD client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetWeapon(_ context.Context, weaponID string) (*WeaponData, error) {
	if weaponID == "" {
		return nil, errors.InvalidArgument("weapon id is required")
	}
	apiID := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(weaponID), " ", "-"))

	slog.Debug("Calling D&D 5e API to get weapon", "weapon", weaponID, "api", apiID)
	item, err := c.dnd5eClient.GetEquipment(apiID)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to get weapon %s", apiID).
			WithMeta("weapon_id", apiID)
	}

	weapon, ok := item.(*entities.Weapon)
	if !ok {
		return nil, errors.InvalidArgumentf("%s is not a weapon", apiID).
			WithMeta("weapon_id", apiID)
	}
	return convertWeapon(weapon), nil
}

func (c *client) ListWeapons(ctx context.Context, category string) ([]*WeaponData, error) {
	if category == "" {
		return nil, errors.InvalidArgument("category is required")
	}

	equipmentCategory, err := c.dnd5eClient.GetEquipmentCategory(category)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to get equipment category %s", category)
	}

	return c.loadWeapons(ctx, equipmentCategory.Equipment)
}

// loadWeapons loads every referenced weapon concurrently, keeping reference
// order and skipping entries that are not weapons
func (c *client) loadWeapons(ctx context.Context, refs []*entities.ReferenceItem) ([]*WeaponData, error) {
	slog.DebugContext(ctx, "Loading weapon details concurrently", "count", len(refs))
	weapons := make([]*WeaponData, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			item, err := c.dnd5eClient.GetEquipment(key)
			if err != nil {
				errChan <- errors.Wrapf(err, "failed to get equipment %s", key)
				return
			}
			if weapon, ok := item.(*entities.Weapon); ok {
				weapons[idx] = convertWeapon(weapon)
			}
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	out := make([]*WeaponData, 0, len(weapons))
	for _, w := range weapons {
		if w != nil {
			out = append(out, w)
		}
	}
	return out, nil
}

func convertWeapon(w *entities.Weapon) *WeaponData {
	data := &WeaponData{
		ID:       w.Key,
		Name:     w.Name,
		Category: w.WeaponCategory,
		Range:    w.WeaponRange,
	}
	if w.Damage != nil {
		data.DamageDice = w.Damage.DamageDice
		if w.Damage.DamageType != nil {
			data.DamageType = w.Damage.DamageType.Name
		}
	}
	return data
}
