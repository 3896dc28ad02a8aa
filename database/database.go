package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moonlitpage-api/models"
)

func Initialize(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Member{},
		&models.FeedPost{},
		&models.Comment{},
		&models.PostLike{},
		&models.PostBookmark{},
		&models.Review{},
		&models.BookShelf{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Feed ordering: like_count DESC, created_at DESC
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_feed_posts_likes_created ON feed_posts(like_count DESC, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for feed_posts: %v\n", err)
	}

	// Comment preview lookups per post, oldest first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_post_created ON comments(post_id, created_at ASC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for comments: %v\n", err)
	}

	// Like / bookmark state lookups per (post, member) pair
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_post_likes_post_member ON post_likes(post_id, member_email)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for post_likes: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_post_bookmarks_post_member ON post_bookmarks(post_id, member_email)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for post_bookmarks: %v\n", err)
	}

	// Bookshelf listing per member, newest first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_book_shelves_member_added ON book_shelves(member_email, date_added DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for book_shelves: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// At most one like per (post, member) pair
	if err := db.Exec("ALTER TABLE post_likes ADD CONSTRAINT uk_post_likes_post_member UNIQUE (post_id, member_email)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for post_likes: %v\n", err)
	}

	// At most one bookmark per (post, member) pair
	if err := db.Exec("ALTER TABLE post_bookmarks ADD CONSTRAINT uk_post_bookmarks_post_member UNIQUE (post_id, member_email)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for post_bookmarks: %v\n", err)
	}

	return nil
}
