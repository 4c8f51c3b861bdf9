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

const ProductsCollection = "products"

type productDocument struct {
	ObjectID    primitive.ObjectID `bson:"_id,omitempty"`
	ID          int                `bson:"id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Category    string             `bson:"category"`
	NewPrice    float64            `bson:"new_price"`
	OldPrice    float64            `bson:"old_price"`
	Date        time.Time          `bson:"date"`
	Available   bool               `bson:"available"`
}

func (d *productDocument) toModel() models.Product {
	return models.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
		Category:    d.Category,
		NewPrice:    d.NewPrice,
		OldPrice:    d.OldPrice,
		Date:        d.Date,
		Available:   d.Available,
	}
}

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) IProductRepository {
	return &MongoProductRepository{collection: db.Collection(ProductsCollection)}
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

func (r *MongoProductRepository) FindByCategory(ctx context.Context, category string, limit int) ([]models.Product, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.M{"category": category}, opts)
}

func (r *MongoProductRepository) MaxID(ctx context.Context) (int, error) {
	var doc productDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	if err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "max product id")
	}
	return doc.ID, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.Date.IsZero() {
		product.Date = time.Now()
	}
	doc := productDocument{
		ObjectID:    primitive.NewObjectID(),
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Image:       product.Image,
		Category:    product.Category,
		NewPrice:    product.NewPrice,
		OldPrice:    product.OldPrice,
		Date:        product.Date,
		Available:   product.Available,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "insert product")
	}
	return nil
}

func (r *MongoProductRepository) DeleteByProductID(ctx context.Context, id int) error {
	err := r.collection.FindOneAndDelete(ctx, bson.M{"id": id}).Err()
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return errors.Wrap(err, "delete product")
	}
	return nil
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	products := make([]models.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].toModel())
	}
	return products, nil
}
