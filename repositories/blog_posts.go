package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogsmith/models"
)

type BlogPostRepository struct {
	col *mongo.Collection
}

func NewBlogPostRepository(db *mongo.Database) *BlogPostRepository {
	return &BlogPostRepository{col: db.Collection("blog_posts")}
}

// Create inserts a new post and returns it with ID and timestamps set.
func (r *BlogPostRepository) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// List returns all posts, newest first.
func (r *BlogPostRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.BlogPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
