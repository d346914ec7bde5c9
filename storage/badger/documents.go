package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &DocumentRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *DocumentRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddDocuments stores parent documents keyed by their ids.
func (r *DocumentRepository) AddDocuments(ctx context.Context, docs ...*core.ParentDocument) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			if err := core.ValidateParentDocument(doc); err != nil {
				return err
			}
			key := makeDocumentKey(doc.ID)
			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single parent document by id.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.ParentDocument, error) {
	var result *core.ParentDocument
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		doc, err := readDocument(tx, makeDocumentKey(id))
		if err != nil {
			return err
		}
		if doc == nil {
			return storage.ErrNotFound
		}
		result = doc
		return nil
	}, false)
	return result, err
}

// GetDocuments retrieves multiple parent documents by their ids.
// Missing ids are skipped without error.
func (r *DocumentRepository) GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.ParentDocument, error) {
	var result []*core.ParentDocument
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			doc, err := readDocument(tx, makeDocumentKey(id))
			if err != nil {
				return err
			}
			if doc != nil {
				result = append(result, doc)
			}
		}
		return nil
	}, false)
	return result, err
}

// AllDocuments returns every stored parent document in key order.
func (r *DocumentRepository) AllDocuments(ctx context.Context) ([]*core.ParentDocument, error) {
	var result []*core.ParentDocument
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.ParentDocument
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			if doc != nil {
				result = append(result, doc)
			}
		}
		return nil
	}, false)
	return result, err
}

// Clear removes every parent document.
func (r *DocumentRepository) Clear(ctx context.Context) error {
	return r.backend.dropPrefix([]byte(documentPrefix))
}

// readDocument reads a document by key within a transaction.
// Returns nil without error when the key does not exist.
func readDocument(tx *badger.Txn, key []byte) (*core.ParentDocument, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var doc *core.ParentDocument
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = storage.UnmarshalDocument(val)
		return err
	})
	return doc, err
}
