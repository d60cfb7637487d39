package models

import "time"

// Follow is a directed follower -> followee edge
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"seguidor_id" gorm:"not null;index;uniqueIndex:idx_follower_followee;check:chk_follow_not_self,follower_id <> followee_id"`
	Follower   *User     `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	FolloweeID uint      `json:"seguindo_id" gorm:"not null;index;uniqueIndex:idx_follower_followee"`
	Followee   *User     `json:"-" gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `json:"criado_em"`
}
