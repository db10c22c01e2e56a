package test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"

	"lookupapi/models"

	"github.com/google/uuid"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// NewJSONOwnerRequest acts on behalf of owner instead of the device's owner.
func NewJSONOwnerRequest(method string, target string, owner string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("X-Owner-Id", owner)
	return req
}

func NewRefString(data string) *string {
	return &data
}

func IntPointer(i int) *int {
	return &i
}

var ErrRemoteDown = errors.New("connection refused")

// FakeRemoteStore keeps rows in memory. Failing operations are listed in Fail
// by name ("InsertUser", "SelectItems", "DeleteItems", "InsertItems",
// "SelectLooks", "InsertLook") or with "*" for all.
type FakeRemoteStore struct {
	mu    sync.Mutex
	Users []models.UserProfile
	Items []models.ClothingItem
	Looks []models.Look
	Fail  []string
	Calls []string
}

func (f *FakeRemoteStore) call(op string) error {
	f.Calls = append(f.Calls, op)
	if slices.Contains(f.Fail, "*") || slices.Contains(f.Fail, op) {
		return fmt.Errorf("%s: %w", op, ErrRemoteDown)
	}
	return nil
}

func (f *FakeRemoteStore) InsertUser(ctx context.Context, user models.UserProfile) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("InsertUser"); err != nil {
		return models.UserProfile{}, err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.Users = append(f.Users, user)
	return user, nil
}

func (f *FakeRemoteStore) SelectItems(ctx context.Context, owner string) ([]models.ClothingItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("SelectItems"); err != nil {
		return nil, err
	}
	items := []models.ClothingItem{}
	for _, item := range f.Items {
		if item.UserID != nil && *item.UserID == owner {
			items = append(items, item)
		}
	}
	return models.CloneItems(items), nil
}

func (f *FakeRemoteStore) DeleteItems(ctx context.Context, owner string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("DeleteItems"); err != nil {
		return err
	}
	f.Items = slices.DeleteFunc(f.Items, func(item models.ClothingItem) bool {
		return item.UserID != nil && *item.UserID == owner
	})
	return nil
}

func (f *FakeRemoteStore) InsertItems(ctx context.Context, items []models.ClothingItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("InsertItems"); err != nil {
		return err
	}
	f.Items = append(f.Items, models.CloneItems(items)...)
	return nil
}

func (f *FakeRemoteStore) SelectLooks(ctx context.Context, owner string) ([]models.Look, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("SelectLooks"); err != nil {
		return nil, err
	}
	looks := []models.Look{}
	for _, look := range f.Looks {
		if look.UserID != nil && *look.UserID == owner {
			looks = append(looks, look)
		}
	}
	slices.SortStableFunc(looks, func(a, b models.Look) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return looks, nil
}

func (f *FakeRemoteStore) InsertLook(ctx context.Context, look models.Look) (models.Look, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("InsertLook"); err != nil {
		return models.Look{}, err
	}
	if look.ID == "" {
		look.ID = uuid.NewString()
	}
	look.Items = models.CloneItems(look.Items)
	f.Looks = append(f.Looks, look)
	return look, nil
}

// MemoryLocalCache is an in-memory LocalCache; FailWrites/FailReads simulate a broken device store.
type MemoryLocalCache struct {
	mu         sync.Mutex
	Values     map[string]string
	FailReads  bool
	FailWrites bool
}

func NewMemoryLocalCache() *MemoryLocalCache {
	return &MemoryLocalCache{Values: map[string]string{}}
}

func (m *MemoryLocalCache) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return "", false, errors.New("local cache read failed")
	}
	value, ok := m.Values[key]
	return value, ok, nil
}

func (m *MemoryLocalCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("local cache write failed")
	}
	m.Values[key] = value
	return nil
}

type AWSProviderMock struct {
	MockUrl string
}

func (awsService AWSProviderMock) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {

	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	return awsService.MockUrl + "/" + fileKey, nil
}

type URLCacheMock struct {
	Fail bool
}

func (u URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if u.Fail {
		return "", errors.New("cache is down")
	}
	return "https://cached.example.com/" + objectKey, nil
}
