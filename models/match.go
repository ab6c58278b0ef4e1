package models

import "time"

// 约会子应用的成对记录统一用 user1_id < user2_id 的规范顺序，
// 避免同一无序对出现两行

const (
	MatchStatusActive    = "active"
	MatchStatusUnmatched = "unmatched"

	SwipeDirectionLeft  = "left"
	SwipeDirectionRight = "right"
)

type Match struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	User1ID       uint64    `gorm:"uniqueIndex:uk_match_pair;not null;check:chk_match_order,user1_id < user2_id" json:"user1_id"`
	User2ID       uint64    `gorm:"uniqueIndex:uk_match_pair;not null" json:"user2_id"`
	Compatibility int       `gorm:"not null;default:0;check:chk_match_compat,compatibility >= 0 AND compatibility <= 100" json:"compatibility"`
	Status        string    `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Match) TableName() string {
	return "matches"
}

type Rating struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	RaterID    uint64    `gorm:"uniqueIndex:uk_rating_pair;not null" json:"rater_id"`
	RatedID    uint64    `gorm:"uniqueIndex:uk_rating_pair;not null;check:chk_rating_no_self,rater_id <> rated_id" json:"rated_id"`
	Score      int       `gorm:"not null;check:chk_rating_score,score >= 0 AND score <= 100" json:"score"`
	Confidence float64   `gorm:"not null;default:0;check:chk_rating_conf,confidence >= 0 AND confidence <= 1" json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

type Swipe struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SwiperID  uint64    `gorm:"uniqueIndex:uk_swipe_pair;not null" json:"swiper_id"`
	TargetID  uint64    `gorm:"uniqueIndex:uk_swipe_pair;not null;check:chk_swipe_no_self,swiper_id <> target_id" json:"target_id"`
	Direction string    `gorm:"type:varchar(8);not null" json:"direction"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Swipe) TableName() string {
	return "swipes"
}
