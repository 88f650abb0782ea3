package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/unicampus/portal/models"
)

// NewGorm returns a Store backed by the relational database.
func NewGorm(db *gorm.DB) *Store {
	return &Store{
		Users:              newGormCollection[models.User](db),
		Faculty:            newGormCollection[models.Faculty](db),
		Students:           newGormCollection[models.Student](db),
		Attendance:         newGormCollection[models.Attendance](db),
		Fees:               newGormCollection[models.Fee](db),
		Assignments:        newGormCollection[models.Assignment](db),
		Submissions:        newGormCollection[models.Submission](db),
		Results:            newGormCollection[models.Result](db),
		Events:             newGormCollection[models.Event](db),
		EventRegistrations: newGormCollection[models.EventRegistration](db),
		TransportRoutes:    newGormCollection[models.TransportRoute](db),
		TransportBookings:  newGormCollection[models.TransportBooking](db),
		Notifications:      newGormCollection[models.Notification](db),
		Messages:           newGormCollection[models.Message](db),
	}
}

type gormCollection[T any, PT Entity[T]] struct {
	db *gorm.DB
}

func newGormCollection[T any, PT Entity[T]](db *gorm.DB) *gormCollection[T, PT] {
	return &gormCollection[T, PT]{db: db}
}

func (c *gormCollection[T, PT]) Create(ctx context.Context, ownerID string, rec T) (T, error) {
	p := PT(&rec)
	p.SetID(uuid.NewString())
	p.SetOwnerID(ownerID)
	p.Touch(time.Now().UTC())
	if err := c.db.WithContext(ctx).Create(&rec).Error; err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (c *gormCollection[T, PT]) Get(ctx context.Context, id string) (T, error) {
	var out T
	if err := c.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return out, ErrNotFound
		}
		return out, err
	}
	return out, nil
}

func (c *gormCollection[T, PT]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gormCollection[T, PT]) ListByOwner(ctx context.Context, ownerID string) ([]T, error) {
	var out []T
	if err := c.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gormCollection[T, PT]) ListByOwners(ctx context.Context, ownerIDs []string) ([]T, error) {
	if len(ownerIDs) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := c.db.WithContext(ctx).Where("owner_id IN ?", ownerIDs).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gormCollection[T, PT]) Update(ctx context.Context, rec T) (T, error) {
	id := PT(&rec).GetID()
	var zero T
	var cur T
	if err := c.db.WithContext(ctx).First(&cur, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	PT(&rec).Touch(time.Now().UTC())
	if err := c.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return zero, err
	}
	return rec, nil
}

func (c *gormCollection[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	res := c.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
