package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/models"
)

func UnreadKey(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

// UnreadCount reads the cached bell counter, recomputing from the
// database on a cache miss or when Redis is unavailable.
func UnreadCount(ctx context.Context, db *gorm.DB, rdb *redis.Client, userID uint) (int64, error) {
	if rdb != nil {
		if val, err := rdb.Get(ctx, UnreadKey(userID)).Result(); err == nil {
			if n, convErr := strconv.ParseInt(val, 10, 64); convErr == nil {
				return n, nil
			}
		}
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}

	if rdb != nil {
		rdb.Set(ctx, UnreadKey(userID), count, 0)
	}

	return count, nil
}

// MarkAllRead clears a user's unread notifications and resets the cached
// counter.
func MarkAllRead(ctx context.Context, db *gorm.DB, rdb *redis.Client, userID uint) error {
	if err := db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		return err
	}

	if rdb != nil {
		rdb.Set(ctx, UnreadKey(userID), 0, 0)
	}

	return nil
}
