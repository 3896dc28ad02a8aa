package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"moonlitpage-api/models"
)

const (
	feedLimit        = 50
	previewComments  = 5
	enrichGoroutines = 8
)

// TitleResolver resolves a stored book id to a display title. The catalog
// adapter satisfies it; tests substitute a stub.
type TitleResolver interface {
	ResolveTitle(ctx context.Context, bookID string) string
}

// FeedService assembles the social feed view model.
type FeedService struct {
	db       *gorm.DB
	resolver TitleResolver
}

func NewFeedService(db *gorm.DB, resolver TitleResolver) *FeedService {
	return &FeedService{db: db, resolver: resolver}
}

// Feed returns the 50 most relevant posts (like count, then recency) joined
// with author display fields and enriched per post: comment count, up to 5
// oldest preview comments, resolved book title, and the viewer's like and
// bookmark state. viewerEmail is empty for anonymous sessions.
//
// Enrichment fans out across posts with bounded concurrency; the result
// slice preserves the query order. Any query failure aborts the whole
// aggregation so a partial feed is never returned.
func (fs *FeedService) Feed(ctx context.Context, viewerEmail string) ([]models.FeedPostView, error) {
	var rows []models.FeedPostView
	err := fs.db.WithContext(ctx).
		Table("feed_posts fp").
		Select("fp.*, m.username_display, m.username, m.profile_pic_url").
		Joins("JOIN members m ON fp.member_email = m.email").
		Order("fp.like_count DESC, fp.created_at DESC").
		Limit(feedLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichGoroutines)
	for i := range rows {
		g.Go(func() error {
			return fs.enrich(gctx, &rows[i], viewerEmail)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (fs *FeedService) enrich(ctx context.Context, post *models.FeedPostView, viewerEmail string) error {
	db := fs.db.WithContext(ctx)

	// Mirror the stored counter into the view fields the JSON response exposes.
	post.LikeTally = int64(post.LikeCount)
	post.BookRef = post.BookID

	if err := db.Model(&models.Comment{}).
		Where("post_id = ?", post.PostID).
		Count(&post.CommentCount).Error; err != nil {
		return err
	}

	comments := make([]models.CommentView, 0, previewComments)
	err := db.Table("comments c").
		Select("c.*, m.username_display, m.username, m.profile_pic_url").
		Joins("JOIN members m ON c.member_email = m.email").
		Where("c.post_id = ?", post.PostID).
		Order("c.created_at ASC").
		Limit(previewComments).
		Scan(&comments).Error
	if err != nil {
		return err
	}
	post.PreviewComments = comments

	// Best-effort display enrichment; never fails the feed.
	post.BookTitle = fs.resolver.ResolveTitle(ctx, post.BookID)

	if viewerEmail != "" {
		var liked int64
		if err := db.Model(&models.PostLike{}).
			Where("post_id = ? AND member_email = ?", post.PostID, viewerEmail).
			Count(&liked).Error; err != nil {
			return err
		}
		post.IsLiked = liked > 0

		var bookmarked int64
		if err := db.Model(&models.PostBookmark{}).
			Where("post_id = ? AND member_email = ?", post.PostID, viewerEmail).
			Count(&bookmarked).Error; err != nil {
			return err
		}
		post.IsBookmarked = bookmarked > 0
	}

	return nil
}

// Bookshelf loads a member's shelf for the feed's add-to-post modal, newest
// additions first.
func (fs *FeedService) Bookshelf(ctx context.Context, memberEmail string) ([]models.BookShelf, error) {
	var shelf []models.BookShelf
	err := fs.db.WithContext(ctx).
		Where("member_email = ?", memberEmail).
		Order("date_added DESC").
		Find(&shelf).Error
	if err != nil {
		return nil, err
	}
	return shelf, nil
}
