package repository

import (
	"context"
	"time"

	"jumatrek/internal/store"
	"jumatrek/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

type BlogPostRepository interface {
	Create(ctx context.Context, post *model.BlogPost) (string, error)
	FindByID(ctx context.Context, id string) (*model.BlogPost, error)
	Find(ctx context.Context, filter model.BlogPostFilter) ([]*model.BlogPost, error)
	Update(ctx context.Context, id string, post *model.BlogPost) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type blogPostRepository struct {
	gw store.Gateway
}

func NewBlogPostRepository(gw store.Gateway) BlogPostRepository {
	return &blogPostRepository{gw: gw}
}

func (r *blogPostRepository) Create(ctx context.Context, post *model.BlogPost) (string, error) {
	post.ID = ""
	post.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	post.UpdatedAt = nil

	id, err := r.gw.Insert(ctx, store.BlogPosts, post)
	if err != nil {
		return "", err
	}
	post.ID = id
	return id, nil
}

func (r *blogPostRepository) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.gw.FindOne(ctx, store.BlogPosts, id, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) Find(ctx context.Context, filter model.BlogPostFilter) ([]*model.BlogPost, error) {
	posts := []*model.BlogPost{}
	if err := r.gw.Find(ctx, store.BlogPosts, BuildFilter(filter), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) Update(ctx context.Context, id string, post *model.BlogPost) (int64, error) {
	return r.gw.Update(ctx, store.BlogPosts, id, bson.M{
		"title":        post.Title,
		"slug":         post.Slug,
		"excerpt":      post.Excerpt,
		"content":      post.Content,
		"cover_image":  post.CoverImage,
		"tags":         post.Tags,
		"published":    post.Published,
		"published_on": post.PublishedOn,
		"updated_at":   time.Now().UTC().Truncate(time.Millisecond),
	})
}

func (r *blogPostRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.gw.Delete(ctx, store.BlogPosts, id)
}

// BuildFilter matches a tag as a whole list element, ignoring case, and a
// search term anywhere in the title or content.
func BuildFilter(f model.BlogPostFilter) bson.M {
	filter := bson.M{}

	if f.Tag != nil {
		filter["tags"] = bson.M{"$elemMatch": bson.M{"$regex": store.Equals(*f.Tag)}}
	}
	if f.Search != nil {
		term := store.Contains(*f.Search)
		filter["$or"] = bson.A{
			bson.M{"title": term},
			bson.M{"content": term},
		}
	}

	return filter
}
