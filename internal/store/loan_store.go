package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"loans-api/internal/models"
)

// ErrDuplicateISBN is the no-op signal returned by Insert when a loan for
// the same ISBN already exists.
var ErrDuplicateISBN = errors.New("loan with this ISBN already exists")

// LoanStore owns the loans collection. Identifiers are ObjectID hex strings
// on every path; a malformed id is treated as "not found", never an error.
type LoanStore struct {
	Collection *mongo.Collection
}

func NewLoanStore(coll *mongo.Collection) *LoanStore {
	return &LoanStore{Collection: coll}
}

// Insert persists the loan unless one with the same ISBN already exists.
// The ISBN re-check closes the race against a concurrent creation that
// passed the handler-level rule checks; the member-limit rule is not
// re-checked here, matching the handler-only enforcement of that cap.
func (s *LoanStore) Insert(ctx context.Context, loan models.Loan) (string, error) {
	err := s.Collection.FindOne(ctx, bson.M{"ISBN": loan.ISBN}).Err()
	if err == nil {
		return "", ErrDuplicateISBN
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	loan.ID = primitive.NewObjectID()
	if _, err := s.Collection.InsertOne(ctx, loan); err != nil {
		return "", err
	}
	return loan.ID.Hex(), nil
}

// Delete removes the loan by id and reports whether one existed.
func (s *LoanStore) Delete(ctx context.Context, loanID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(loanID)
	if err != nil {
		return false, nil
	}

	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// FindByID is a point lookup by loan id.
func (s *LoanStore) FindByID(ctx context.Context, loanID string) (models.Loan, bool, error) {
	oid, err := primitive.ObjectIDFromHex(loanID)
	if err != nil {
		return models.Loan{}, false, nil
	}

	var loan models.Loan
	err = s.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&loan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Loan{}, false, nil
	}
	if err != nil {
		return models.Loan{}, false, err
	}

	loan.LoanID = loan.ID.Hex()
	return loan, true, nil
}

// FindAll returns every loan in storage order.
func (s *LoanStore) FindAll(ctx context.Context) ([]models.Loan, error) {
	return s.find(ctx, bson.M{})
}

// FindByFilter returns loans matching every provided field exactly.
// An empty filter matches everything.
func (s *LoanStore) FindByFilter(ctx context.Context, filter map[string]string) ([]models.Loan, error) {
	query := bson.M{}
	for field, value := range filter {
		query[field] = value
	}
	return s.find(ctx, query)
}

func (s *LoanStore) find(ctx context.Context, query bson.M) ([]models.Loan, error) {
	cursor, err := s.Collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var loans []models.Loan
	if err := cursor.All(ctx, &loans); err != nil {
		return nil, err
	}

	for i := range loans {
		loans[i].LoanID = loans[i].ID.Hex()
	}
	return loans, nil
}
