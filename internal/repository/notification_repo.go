package repository

import (
	"lokerhub/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return storeErr(r.db.Create(n).Error)
}

func (r *NotificationRepository) ListByUserID(userID uint, limit, offset int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, storeErr(err)
}

// MarkRead sets is_read scoped to the recipient. Re-marking an already read
// notification is a no-op, not an error.
func (r *NotificationRepository) MarkRead(id, userID uint) error {
	return storeErr(r.db.Model(&models.Notification{}).Where("id = ? AND user_id = ?", id, userID).Update("is_read", true).Error)
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return storeErr(r.db.Model(&models.Notification{}).Where("user_id = ?", userID).Update("is_read", true).Error)
}

func (r *NotificationRepository) DeleteAllByUserID(userID uint) error {
	return storeErr(r.db.Where("user_id = ?", userID).Delete(&models.Notification{}).Error)
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&c).Error
	return c, storeErr(err)
}
