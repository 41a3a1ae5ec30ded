package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreStore implements RemoteStore on Google Cloud Firestore, the
// hosted document database backing the showcase site.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) RemoteStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore get all %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (s *FirestoreStore) GetByID(ctx context.Context, collection, id string) (Document, bool, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		// A NotFound error still carries a snapshot with Exists()==false.
		if snap != nil && !snap.Exists() {
			return Document{}, false, nil
		}
		return Document{}, false, fmt.Errorf("firestore get %s/%s: %w", collection, id, err)
	}

	return Document{ID: snap.Ref.ID, Data: snap.Data()}, true, nil
}

func (s *FirestoreStore) SetMerge(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("firestore merge %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) SetFull(ctx context.Context, collection, id string, record map[string]interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("firestore set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	// Firestore deletes are idempotent: removing an absent document
	// succeeds, which RemoveProduct relies on.
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("firestore delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) NewID(collection string) string {
	return s.client.Collection(collection).NewDoc().ID
}
