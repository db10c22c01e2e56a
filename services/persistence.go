package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lookupapi/models"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

type PersistenceProvider interface {
	CurrentOwner() *string
	CreateProfile(ctx context.Context, profile models.UserProfile) models.UserProfile
	LoadProfile() (models.UserProfile, bool)
	LoadItems(ctx context.Context, owner *string) []models.ClothingItem
	SaveItems(ctx context.Context, owner *string, items []models.ClothingItem)
	LoadLooks(ctx context.Context, owner *string) []models.Look
	SaveLook(ctx context.Context, owner *string, look models.Look) models.Look
}

type backingMode int

const (
	backingLocal backingMode = iota
	backingRemote
)

// Persistence picks the remote store when an owner is known and falls back to
// the local cache on any remote failure. It never returns persistence errors:
// they are logged and reported, and the call degrades to local-only storage.
// Remote and local are exclusive targets within one call.
type Persistence struct {
	remote RemoteStore
	local  LocalCache
	now    func() time.Time
}

// NewPersistence accepts a nil remote for devices running without a database.
func NewPersistence(remote RemoteStore, local LocalCache) *Persistence {
	return &Persistence{remote: remote, local: local, now: time.Now}
}

func (p *Persistence) backing(owner *string) backingMode {
	if owner != nil && *owner != "" && p.remote != nil {
		return backingRemote
	}
	return backingLocal
}

func (p *Persistence) CurrentOwner() *string {
	owner, found, err := p.local.Get(UserIDKey)
	if err != nil {
		p.reportLocalFailure("read owner", err)
		return nil
	}
	if !found || owner == "" {
		return nil
	}
	return &owner
}

// CreateProfile inserts the user remotely and remembers its id on the device.
// Without the remote store only the profile is kept locally and the device
// stays ownerless.
func (p *Persistence) CreateProfile(ctx context.Context, profile models.UserProfile) models.UserProfile {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = p.now().UTC()
	}
	if p.remote != nil {
		created, err := p.remote.InsertUser(ctx, profile)
		if err == nil {
			if err := p.local.Set(UserIDKey, created.ID); err != nil {
				p.reportLocalFailure("write owner", err)
			}
			p.writeLocal(UserProfileKey, created)
			log.Printf("[Persistence] Profile %s created remotely", created.ID)
			return created
		}
		p.reportRemoteFailure("create profile", err)
	}
	p.writeLocal(UserProfileKey, profile)
	return profile
}

func (p *Persistence) LoadProfile() (models.UserProfile, bool) {
	return readLocal[models.UserProfile](p, UserProfileKey)
}

// LoadItems falls back to the device wardrobe, which is not owner scoped.
func (p *Persistence) LoadItems(ctx context.Context, owner *string) []models.ClothingItem {
	if p.backing(owner) == backingRemote {
		items, err := p.remote.SelectItems(ctx, *owner)
		if err == nil {
			return items
		}
		p.reportRemoteFailure("load items", err)
	}
	items, ok := readLocal[[]models.ClothingItem](p, WardrobeItemsKey)
	if !ok || items == nil {
		return []models.ClothingItem{}
	}
	return items
}

// SaveItems replaces the owner's whole remote partition: delete all, then
// insert all. The two calls are not atomic; a failure in between leaves the
// partition empty remotely and the items only in the local cache.
func (p *Persistence) SaveItems(ctx context.Context, owner *string, items []models.ClothingItem) {
	if p.backing(owner) == backingRemote {
		err := p.replaceRemoteItems(ctx, *owner, items)
		if err == nil {
			return
		}
		p.reportRemoteFailure("save items", err)
	}
	p.writeLocal(WardrobeItemsKey, items)
}

func (p *Persistence) replaceRemoteItems(ctx context.Context, owner string, items []models.ClothingItem) error {
	if err := p.remote.DeleteItems(ctx, owner); err != nil {
		return err
	}
	rows := models.CloneItems(items)
	for i := range rows {
		rows[i].UserID = &owner
	}
	return p.remote.InsertItems(ctx, rows)
}

// LoadLooks reads look history, newest first. History is remote only: an
// absent owner or a remote failure yields an empty history.
func (p *Persistence) LoadLooks(ctx context.Context, owner *string) []models.Look {
	if p.backing(owner) != backingRemote {
		return []models.Look{}
	}
	looks, err := p.remote.SelectLooks(ctx, *owner)
	if err != nil {
		p.reportRemoteFailure("load looks", err)
		return []models.Look{}
	}
	return looks
}

// SaveLook stores a rated look. The rating is kept as given and the items are
// copied, so the saved look never changes with the wardrobe.
func (p *Persistence) SaveLook(ctx context.Context, owner *string, look models.Look) models.Look {
	saved := models.Look{
		ID:        look.ID,
		Items:     models.CloneItems(look.Items),
		Rating:    look.Rating,
		CreatedAt: look.CreatedAt,
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = p.now().UTC()
	}
	if owner != nil && *owner != "" {
		ownerID := *owner
		saved.UserID = &ownerID
	}

	if p.backing(owner) == backingRemote {
		inserted, err := p.remote.InsertLook(ctx, saved)
		if err == nil {
			return inserted
		}
		p.reportRemoteFailure("save look", err)
	}
	return p.appendLocalLook(saved)
}

func (p *Persistence) appendLocalLook(look models.Look) models.Look {
	if look.ID == "" {
		look.ID = uuid.NewString()
	}
	looks, _ := readLocal[[]models.Look](p, LooksKey)
	looks = append(looks, look)
	p.writeLocal(LooksKey, looks)
	return look
}

// readLocal decodes the json value under key. Malformed values are reported
// and treated as absent.
func readLocal[T any](p *Persistence, key string) (T, bool) {
	var value T
	raw, found, err := p.local.Get(key)
	if err != nil {
		p.reportLocalFailure("read "+key, err)
		return value, false
	}
	if !found {
		return value, false
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		p.reportLocalFailure("decode "+key, fmt.Errorf("%w: %w", ErrMalformedLocalCache, err))
		var zero T
		return zero, false
	}
	return value, true
}

func (p *Persistence) writeLocal(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		p.reportLocalFailure("encode "+key, err)
		return
	}
	if err := p.local.Set(key, string(data)); err != nil {
		p.reportLocalFailure("write "+key, err)
	}
}

func (p *Persistence) reportRemoteFailure(op string, err error) {
	log.Printf("[Persistence] Remote %s failed, using local cache: %v", op, err)
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("failure_type", "remote_store")
		scope.SetExtra("operation", op)
		sentry.CaptureException(err)
	})
}

func (p *Persistence) reportLocalFailure(op string, err error) {
	log.Printf("[Persistence] Local cache %s failed: %v", op, err)
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("failure_type", "local_cache")
		scope.SetExtra("operation", op)
		sentry.CaptureException(err)
	})
}
