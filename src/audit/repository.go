package audit

import "gorm.io/gorm"

type Repository interface {
	Create(entry Entry) error
	Recent(limit, offset int) ([]Entry, error)
	RecentByAction(action string, limit, offset int) ([]Entry, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(entry Entry) error {
	return r.db.Create(&entry).Error
}

func (r *gormRepository) Recent(limit, offset int) ([]Entry, error) {
	var entries []Entry
	result := r.db.Order("timestamp DESC").Limit(limit).Offset(offset).Find(&entries)
	return entries, result.Error
}

func (r *gormRepository) RecentByAction(action string, limit, offset int) ([]Entry, error) {
	var entries []Entry
	result := r.db.Where("action = ?", action).Order("timestamp DESC").Limit(limit).Offset(offset).Find(&entries)
	return entries, result.Error
}
