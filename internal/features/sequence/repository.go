package sequence

import (
	"context"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SequenceRepository interface {
	Create(ctx context.Context, seq *Sequence) error
	List(ctx context.Context) ([]Sequence, error)
	// Increase atomically bumps the counter for seqType and returns the updated document.
	Increase(ctx context.Context, seqType string) (*Sequence, error)
}

type SequenceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSequenceRepository(mongodb *database.MongodbDB) SequenceRepository {
	return &SequenceRepositoryImpl{
		Collection: mongodb.DB.Collection(database.SequencesCollection),
	}
}

func (r *SequenceRepositoryImpl) Create(ctx context.Context, seq *Sequence) error {
	_, err := r.Collection.InsertOne(ctx, seq)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.Validation("sequence for type '%s' already exists", seq.Type)
	}
	if err != nil {
		return apperrors.Store(err, "insert sequence")
	}
	return nil
}

func (r *SequenceRepositoryImpl) List(ctx context.Context) ([]Sequence, error) {
	return database.FindPage[Sequence](ctx, r.Collection, bson.M{}, database.Page{Sort: bson.D{{Key: "type", Value: 1}}})
}

func (r *SequenceRepositoryImpl) Increase(ctx context.Context, seqType string) (*Sequence, error) {
	var seq Sequence
	err := database.Increment(ctx, r.Collection, bson.M{"type": seqType}, "nextAvailableNumber", 1, &seq,
		"sequence with type '"+seqType+"'")
	if err != nil {
		return nil, err
	}
	return &seq, nil
}
