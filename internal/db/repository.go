package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// Options tunes store behavior
type Options struct {
	// LegacyUserOnlyRemoval deletes the first like or save of the user when
	// unliking or unsaving, whatever post it belongs to.
	LegacyUserOnlyRemoval bool
}

// Repository provides database access methods
type Repository struct {
	db   *gorm.DB
	opts Options
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB, opts Options) *Repository {
	return &Repository{db: db, opts: opts}
}

// transaction runs fn inside one database transaction bound to ctx. All
// statements issued by fn must go through tx.
func (r *Repository) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return translate(r.db.WithContext(ctx).Transaction(fn))
}

// Store groups the per-entity repositories over one connection pool
type Store struct {
	Users      *UserRepository
	Posts      *PostRepository
	Comments   *CommentRepository
	Reactions  *ReactionRepository
	Categories *CategoryRepository
}

// NewStore creates every repository on top of db
func NewStore(db *gorm.DB, opts Options) *Store {
	repo := NewRepository(db, opts)
	return &Store{
		Users:      NewUserRepository(repo),
		Posts:      NewPostRepository(repo),
		Comments:   NewCommentRepository(repo),
		Reactions:  NewReactionRepository(repo),
		Categories: NewCategoryRepository(repo),
	}
}

// exists reports whether a row with the given primary key exists
func exists(tx *gorm.DB, model interface{}, id int64) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// insertUnique inserts v unless a row with the same unique key exists, in
// which case a Conflict error carrying msg is returned.
func insertUnique(tx *gorm.DB, v interface{}, msg string) error {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return conflict(msg)
	}
	return nil
}

// deletePosts removes the posts and everything hanging off them: comments
// and their likes, post likes, saves and category links.
func deletePosts(tx *gorm.DB, postIDs []int64) error {
	if len(postIDs) == 0 {
		return nil
	}

	var commentIDs []int64
	if err := tx.Model(&models.Comment{}).Where("post_id IN ?", postIDs).Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if err := deleteComments(tx, commentIDs); err != nil {
		return err
	}
	if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostLike{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostSave{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM "+models.PostCategoryTable+" WHERE post_id IN ?", postIDs).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error
}

// deleteComments removes the given comments and their likes. Callers pass a
// set closed under replies, see commentSubtree.
func deleteComments(tx *gorm.DB, commentIDs []int64) error {
	if len(commentIDs) == 0 {
		return nil
	}
	if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", commentIDs).Delete(&models.Comment{}).Error
}

// commentSubtree returns roots plus every transitive reply to them
func commentSubtree(tx *gorm.DB, roots []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(roots))
	all := make([]int64, 0, len(roots))
	frontier := make([]int64, 0, len(roots))
	for _, id := range roots {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			all = append(all, id)
			frontier = append(frontier, id)
		}
	}

	for len(frontier) > 0 {
		var children []int64
		if err := tx.Model(&models.Comment{}).Where("reply_to IN ?", frontier).Pluck("id", &children).Error; err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, id := range children {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			all = append(all, id)
			frontier = append(frontier, id)
		}
	}
	return all, nil
}

// oldestFirst orders rows by creation time, ties broken by id
func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}}).Order("id ASC")
}

// newestFirst is the reverse of oldestFirst
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).Order("id DESC")
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
