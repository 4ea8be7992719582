package models

// MaxCategoryTitle is the maximum length of a category title
const MaxCategoryTitle = 15

// Category is a tag that can be attached to many posts
type Category struct {
	ID    int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Title string `gorm:"type:varchar(15);not null;uniqueIndex;column:title"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Post{},
		&Category{},
		&Comment{},
		&CommentLike{},
		&PostLike{},
		&PostSave{},
	}
}
