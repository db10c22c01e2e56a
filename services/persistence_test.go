package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lookupapi/models"
	"lookupapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wardrobe() []models.ClothingItem {
	return []models.ClothingItem{
		{ID: "1", Name: "Shirt", Category: models.Tops, Image: "https://img/1", Color: "white", Size: "M"},
		{ID: "2", Name: "Jeans", Category: models.Pants, Image: "https://img/2", Color: "blue", Size: "40"},
		{ID: "3", Name: "Boots", Category: models.Shoes, Image: "https://img/3", Color: "black", Size: "38"},
	}
}

func ids(items []models.ClothingItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func setupPersistence() (*Persistence, *test.FakeRemoteStore, *test.MemoryLocalCache) {
	remote := &test.FakeRemoteStore{}
	local := test.NewMemoryLocalCache()
	return NewPersistence(remote, local), remote, local
}

func TestSaveThenLoadItemsRemote(t *testing.T) {
	p, remote, local := setupPersistence()
	owner := "user-1"
	ctx := context.Background()

	p.SaveItems(ctx, &owner, wardrobe())
	loaded := p.LoadItems(ctx, &owner)

	assert.ElementsMatch(t, []string{"1", "2", "3"}, ids(loaded))
	for _, item := range loaded {
		require.NotNil(t, item.UserID)
		assert.Equal(t, owner, *item.UserID)
	}
	// success path never touches the device cache
	assert.NotContains(t, local.Values, WardrobeItemsKey)
	assert.Equal(t, []string{"DeleteItems", "InsertItems", "SelectItems"}, remote.Calls)
}

func TestSaveItemsReplacesWholePartition(t *testing.T) {
	p, remote, _ := setupPersistence()
	owner, other := "user-1", "user-2"
	ctx := context.Background()

	p.SaveItems(ctx, &other, wardrobe()[:1])
	p.SaveItems(ctx, &owner, wardrobe())
	p.SaveItems(ctx, &owner, wardrobe()[1:2])

	assert.Equal(t, []string{"2"}, ids(p.LoadItems(ctx, &owner)))
	assert.Equal(t, []string{"1"}, ids(p.LoadItems(ctx, &other)))
	assert.Len(t, remote.Items, 2)
}

func TestSaveItemsEmptyClearsPartition(t *testing.T) {
	p, _, _ := setupPersistence()
	owner := "user-1"
	ctx := context.Background()

	p.SaveItems(ctx, &owner, wardrobe())
	p.SaveItems(ctx, &owner, []models.ClothingItem{})

	assert.Empty(t, p.LoadItems(ctx, &owner))
}

func TestSaveItemsDoesNotMutateInput(t *testing.T) {
	p, _, _ := setupPersistence()
	owner := "user-1"
	items := wardrobe()

	p.SaveItems(context.Background(), &owner, items)

	assert.Nil(t, items[0].UserID)
}

func TestItemsRoundTripLocalWhenRemoteFails(t *testing.T) {
	p, remote, local := setupPersistence()
	remote.Fail = []string{"*"}
	owner := "user-1"
	ctx := context.Background()

	assert.NotPanics(t, func() { p.SaveItems(ctx, &owner, wardrobe()) })
	assert.Contains(t, local.Values, WardrobeItemsKey)

	assert.ElementsMatch(t, []string{"1", "2", "3"}, ids(p.LoadItems(ctx, &owner)))
}

func TestSaveItemsFallsBackWhenInsertFailsAfterDelete(t *testing.T) {
	p, remote, local := setupPersistence()
	owner := "user-1"
	ctx := context.Background()
	p.SaveItems(ctx, &owner, wardrobe())

	remote.Fail = []string{"InsertItems"}
	p.SaveItems(ctx, &owner, wardrobe()[:2])

	// partial write: remote partition is gone, items only on the device
	assert.Empty(t, remote.Items)
	var cached []models.ClothingItem
	require.NoError(t, json.Unmarshal([]byte(local.Values[WardrobeItemsKey]), &cached))
	assert.Equal(t, []string{"1", "2"}, ids(cached))
}

func TestItemsWithoutOwnerUseLocalCache(t *testing.T) {
	p, remote, local := setupPersistence()
	ctx := context.Background()

	p.SaveItems(ctx, nil, wardrobe())
	empty := ""
	loaded := p.LoadItems(ctx, &empty)

	assert.Equal(t, []string{"1", "2", "3"}, ids(loaded))
	assert.Empty(t, remote.Calls)
	assert.Contains(t, local.Values, WardrobeItemsKey)
}

func TestItemsWithoutRemoteStore(t *testing.T) {
	local := test.NewMemoryLocalCache()
	p := NewPersistence(nil, local)
	owner := "user-1"
	ctx := context.Background()

	p.SaveItems(ctx, &owner, wardrobe())

	assert.Len(t, p.LoadItems(ctx, &owner), 3)
}

func TestLoadItemsLocalFallbackIsNotOwnerScoped(t *testing.T) {
	p, remote, _ := setupPersistence()
	ctx := context.Background()
	p.SaveItems(ctx, nil, wardrobe())

	remote.Fail = []string{"SelectItems"}
	owner := "someone-else"

	assert.Len(t, p.LoadItems(ctx, &owner), 3)
}

func TestLoadItemsEmptyAndMalformedCache(t *testing.T) {
	p, _, local := setupPersistence()
	ctx := context.Background()

	items := p.LoadItems(ctx, nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	local.Values[WardrobeItemsKey] = "{not json"
	assert.Empty(t, p.LoadItems(ctx, nil))

	local.Values[WardrobeItemsKey] = "null"
	assert.NotNil(t, p.LoadItems(ctx, nil))
}

func TestLoadItemsLocalReadFailure(t *testing.T) {
	p, _, local := setupPersistence()
	local.FailReads = true

	assert.Empty(t, p.LoadItems(context.Background(), nil))
}

func TestSaveLookRemote(t *testing.T) {
	p, remote, local := setupPersistence()
	owner := "user-1"
	ctx := context.Background()
	live := wardrobe()

	saved := p.SaveLook(ctx, &owner, models.Look{Items: live, Rating: 4})
	live[0].Name = "Renamed"

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 4, saved.Rating)
	assert.False(t, saved.CreatedAt.IsZero())
	require.Len(t, remote.Looks, 1)
	assert.Equal(t, "Shirt", remote.Looks[0].Items[0].Name)
	assert.Equal(t, "Shirt", saved.Items[0].Name)
	assert.NotContains(t, local.Values, LooksKey)
}

func TestSaveLookRatingIsKeptVerbatim(t *testing.T) {
	p, _, _ := setupPersistence()
	owner := "user-1"
	for rating := models.MinRating; rating <= models.MaxRating; rating++ {
		saved := p.SaveLook(context.Background(), &owner, models.Look{Items: wardrobe(), Rating: rating})
		assert.Equal(t, rating, saved.Rating)
	}
}

func TestSaveLookLocalAppends(t *testing.T) {
	p, remote, local := setupPersistence()
	remote.Fail = []string{"InsertLook"}
	owner := "user-1"
	ctx := context.Background()

	first := p.SaveLook(ctx, &owner, models.Look{Items: wardrobe()[:1], Rating: 2})
	second := p.SaveLook(ctx, nil, models.Look{Items: wardrobe()[1:], Rating: 5})

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, second.CreatedAt.IsZero())
	assert.Nil(t, second.UserID)

	var cached []models.Look
	require.NoError(t, json.Unmarshal([]byte(local.Values[LooksKey]), &cached))
	require.Len(t, cached, 2)
	assert.Equal(t, first.ID, cached[0].ID)
	assert.Equal(t, 2, cached[0].Rating)
	assert.Equal(t, 5, cached[1].Rating)
	assert.Equal(t, owner, *cached[0].UserID)
}

func TestSaveLookKeepsGivenIDAndTimestamp(t *testing.T) {
	p, _, _ := setupPersistence()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	saved := p.SaveLook(context.Background(), nil, models.Look{ID: "look-1", CreatedAt: createdAt, Items: wardrobe(), Rating: 1})

	assert.Equal(t, "look-1", saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
}

func TestLoadLooksNewestFirst(t *testing.T) {
	p, _, _ := setupPersistence()
	owner := "user-1"
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	p.SaveLook(ctx, &owner, models.Look{ID: "old", CreatedAt: base, Items: wardrobe(), Rating: 1})
	p.SaveLook(ctx, &owner, models.Look{ID: "new", CreatedAt: base.Add(time.Hour), Items: wardrobe(), Rating: 3})

	looks := p.LoadLooks(ctx, &owner)
	require.Len(t, looks, 2)
	assert.Equal(t, "new", looks[0].ID)
	assert.Equal(t, "old", looks[1].ID)
}

func TestLoadLooksHasNoLocalFallback(t *testing.T) {
	p, remote, _ := setupPersistence()
	ctx := context.Background()
	p.SaveLook(ctx, nil, models.Look{Items: wardrobe(), Rating: 3})

	assert.Empty(t, p.LoadLooks(ctx, nil))

	remote.Fail = []string{"SelectLooks"}
	owner := "user-1"
	looks := p.LoadLooks(ctx, &owner)
	assert.NotNil(t, looks)
	assert.Empty(t, looks)
}

func TestCreateProfileRemote(t *testing.T) {
	p, remote, local := setupPersistence()

	created := p.CreateProfile(context.Background(), models.UserProfile{Name: "Ana", Height: 170, Weight: 60, Style: "casual"})

	require.NotEmpty(t, created.ID)
	assert.Len(t, remote.Users, 1)
	assert.Equal(t, created.ID, local.Values[UserIDKey])
	owner := p.CurrentOwner()
	require.NotNil(t, owner)
	assert.Equal(t, created.ID, *owner)

	profile, found := p.LoadProfile()
	assert.True(t, found)
	assert.Equal(t, "Ana", profile.Name)
}

func TestCreateProfileRemoteFailureKeepsDeviceOwnerless(t *testing.T) {
	p, remote, local := setupPersistence()
	remote.Fail = []string{"InsertUser"}

	created := p.CreateProfile(context.Background(), models.UserProfile{Name: "Ana", Height: 170, Weight: 60})

	assert.Empty(t, created.ID)
	assert.NotContains(t, local.Values, UserIDKey)
	assert.Nil(t, p.CurrentOwner())
	profile, found := p.LoadProfile()
	assert.True(t, found)
	assert.Equal(t, 170, profile.Height)
}

func TestLoadProfileMalformed(t *testing.T) {
	p, _, local := setupPersistence()
	local.Values[UserProfileKey] = "[1,2"

	_, found := p.LoadProfile()
	assert.False(t, found)
}

func TestLocalWriteFailureIsSwallowed(t *testing.T) {
	p, _, local := setupPersistence()
	local.FailWrites = true

	assert.NotPanics(t, func() {
		p.SaveItems(context.Background(), nil, wardrobe())
		p.SaveLook(context.Background(), nil, models.Look{Items: wardrobe(), Rating: 1})
	})
}
