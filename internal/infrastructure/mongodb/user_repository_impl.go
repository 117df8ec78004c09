package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/inkwell-auth/internal/domain/entity"
	"github.com/inkwell/inkwell-auth/internal/domain/repository"
)

// UserRepository is the mongo-backed implementation of
// repository.UserRepository. Single-document writes are atomic; the
// unique indexes are the only cross-document constraint.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	err := r.coll.FindOne(ctx, bson.M{"personal_info.email": email}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetAuthProfileByEmail projects only the fields response shaping needs
// plus the google_auth flag.
func (r *UserRepository) GetAuthProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	projection := bson.M{
		"personal_info.fullname":    1,
		"personal_info.username":    1,
		"personal_info.profile_img": 1,
		"google_auth":               1,
	}
	u := &entity.User{}
	err := r.coll.FindOne(ctx, bson.M{"personal_info.email": email},
		options.FindOne().SetProjection(projection)).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"personal_info.username": username},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
