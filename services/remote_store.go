package services

import (
	"context"
	"errors"
	"fmt"

	"lookupapi/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRemoteUnavailable = errors.New("remote store unavailable")

// RemoteStore is row based CRUD over users, wardrobe_items and looks.
// Any failure is a non-nil error; an empty partition is a nil error and an empty slice.
type RemoteStore interface {
	InsertUser(ctx context.Context, user models.UserProfile) (models.UserProfile, error)
	SelectItems(ctx context.Context, owner string) ([]models.ClothingItem, error)
	DeleteItems(ctx context.Context, owner string) error
	InsertItems(ctx context.Context, items []models.ClothingItem) error
	SelectLooks(ctx context.Context, owner string) ([]models.Look, error)
	InsertLook(ctx context.Context, look models.Look) (models.Look, error)
}

type GormRemoteStore struct {
	db *gorm.DB
}

func NewGormRemoteStore(db *gorm.DB) *GormRemoteStore {
	return &GormRemoteStore{db: db}
}

func remoteErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, op, err)
}

func (s *GormRemoteStore) InsertUser(ctx context.Context, user models.UserProfile) (models.UserProfile, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.UserProfile{}, remoteErr("insert user", err)
	}
	return user, nil
}

func (s *GormRemoteStore) SelectItems(ctx context.Context, owner string) ([]models.ClothingItem, error) {
	items := []models.ClothingItem{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", owner).Order("row_id").Find(&items).Error; err != nil {
		return nil, remoteErr("select wardrobe items", err)
	}
	return items, nil
}

func (s *GormRemoteStore) DeleteItems(ctx context.Context, owner string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", owner).Delete(&models.ClothingItem{}).Error; err != nil {
		return remoteErr("delete wardrobe items", err)
	}
	return nil
}

func (s *GormRemoteStore) InsertItems(ctx context.Context, items []models.ClothingItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := models.CloneItems(items)
	for i := range rows {
		// row keys always come from the sequence
		rows[i].RowID = 0
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return remoteErr("insert wardrobe items", err)
	}
	return nil
}

func (s *GormRemoteStore) SelectLooks(ctx context.Context, owner string) ([]models.Look, error) {
	looks := []models.Look{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", owner).Order("created_at desc").Find(&looks).Error; err != nil {
		return nil, remoteErr("select looks", err)
	}
	return looks, nil
}

func (s *GormRemoteStore) InsertLook(ctx context.Context, look models.Look) (models.Look, error) {
	if look.ID == "" {
		look.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(&look).Error; err != nil {
		return models.Look{}, remoteErr("insert look", err)
	}
	return look, nil
}
