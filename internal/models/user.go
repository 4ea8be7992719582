package models

// User represents an account that owns posts, comments, likes and saves
type User struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Name       string `gorm:"type:varchar(255);not null;column:name"`
	IsVerified int    `gorm:"not null;default:0;column:is_verified"`

	// Relationships. Declared for the ON DELETE CASCADE constraints only;
	// nothing is loaded unless a query preloads it.
	Posts        []Post        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments     []Comment     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PostLikes    []PostLike    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PostSaves    []PostSave    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CommentLikes []CommentLike `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
