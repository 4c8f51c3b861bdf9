package repositories

import (
	"context"
	"ecommerce-backend/models"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const UsersCollection = "users"

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	CartData mongoCart          `bson:"cartData"`
	Date     time.Time          `bson:"date"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
		CartData: models.CartData(d.CartData),
		Date:     d.Date,
	}
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) IUserRepository {
	return &MongoUserRepository{collection: db.Collection(UsersCollection)}
}

// EnsureUserIndexes creates the unique email index that signup relies on.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return errors.Wrap(err, "create users email index")
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
		CartData: mongoCart(user.CartData),
		Date:     user.Date,
	}
	if doc.Date.IsZero() {
		doc.Date = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return errors.Wrap(err, "insert user")
	}
	user.ID = doc.ID.Hex()
	user.Date = doc.Date
	return nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) UpdateCart(ctx context.Context, id string, cart models.CartData) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"cartData": mongoCart(cart)}},
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return errors.Wrap(err, "update cart")
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find user")
	}
	return doc.toModel(), nil
}
