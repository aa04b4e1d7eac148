package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TransactionScope runs business logic inside one transactional boundary.
// Execute commits when fn returns nil and aborts otherwise. The ctx handed
// to fn carries the session, so repositories called inside fn join the
// transaction without any shared mutable state; a repository invoked with a
// plain ctx simply runs on its own connection.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoTransactionScope implements TransactionScope on a MongoDB session.
type MongoTransactionScope struct {
	client *mongo.Client
}

func NewMongoTransactionScope(client *mongo.Client) *MongoTransactionScope {
	return &MongoTransactionScope{client: client}
}

// Execute opens a session, runs fn inside WithTransaction and always ends
// the session on the way out. Driver-level operations pick the session up
// from the ctx they receive, so nested writers need no extra plumbing.
func (s *MongoTransactionScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, fn(ctx)
	})
	return err
}

var _ TransactionScope = (*MongoTransactionScope)(nil)
