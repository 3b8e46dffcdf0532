package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexline/accounts-api/internal/core/domain"
)

const roleCollection = "roles"

// MongoRoleRepository reads the static role table. Roles are reference data:
// seeded at startup, looked up during signup, never mutated by the API.
type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(roleCollection)}
}

type mongoRole struct {
	Name string `bson:"_id"`
}

func (r *MongoRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{Name: mr.Name}, nil
}

// Seed upserts the given role names. Idempotent; safe to run on every start.
func (r *MongoRoleRepository) Seed(ctx context.Context, names ...string) error {
	for _, name := range names {
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"_id": name}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	return nil
}
