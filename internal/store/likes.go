package store

import (
	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleLike flips like membership for one (message, identity) pair and
// adjusts the counter in the same transaction.
//
// The insert goes first with ON CONFLICT DO NOTHING rather than a
// pre-check, so concurrent toggles for the same pair serialize on the
// composite unique index: exactly one insert wins, the loser observes zero
// affected rows and takes the un-like path. Counter adjustments are
// relative expressions, never read-then-write, so toggles by different
// identities compose without lost updates.
func (s *Store) ToggleLike(messageID, userID string) (liked bool, likeCount int64, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.Select("id").First(&msg, "id = ?", messageID).Error; err != nil {
			return notFoundOr(err)
		}

		like := models.Like{MessageID: messageID, UserID: userID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = true
			if err := adjustCounter(tx, messageID, "like_count", +1); err != nil {
				return err
			}
		} else {
			// Already liked: remove the row. A racing un-like may have beaten
			// us to it; zero affected rows means the counter was already
			// settled by the winner.
			del := tx.Where("message_id = ? AND user_id = ?", messageID, userID).Delete(&models.Like{})
			if del.Error != nil {
				return del.Error
			}
			liked = false
			if del.RowsAffected > 0 {
				if err := adjustCounter(tx, messageID, "like_count", -1); err != nil {
					return err
				}
			}
		}

		var fresh models.Message
		if err := tx.Select("like_count").First(&fresh, "id = ?", messageID).Error; err != nil {
			return err
		}
		likeCount = fresh.LikeCount
		return nil
	})
	return liked, likeCount, err
}

// adjustCounter applies a relative +1/-1 to a message counter column.
// Decrements floor at zero; the CASE form runs unchanged on PostgreSQL and
// SQLite.
func adjustCounter(tx *gorm.DB, messageID, column string, delta int) error {
	var expr clause.Expr
	if delta > 0 {
		expr = gorm.Expr(column + " + 1")
	} else {
		expr = gorm.Expr("CASE WHEN " + column + " > 0 THEN " + column + " - 1 ELSE 0 END")
	}
	return tx.Model(&models.Message{}).Where("id = ?", messageID).UpdateColumn(column, expr).Error
}
