package domain

import "context"

// Key identifies a single record by its key attributes.
type Key map[string]string

// Assignment sets a single top level attribute to a new value.
type Assignment struct {
	Field string
	Value interface{}
}

// Condition matches records whose attribute equals the given value.
type Condition struct {
	Attribute string
	Value     interface{}
}

// RecordStore is a thin key-value table abstraction. It knows nothing about
// the records it holds; ownership and other invariants belong to the services.
// Every failure is reported as a *StoreError.
type RecordStore interface {
	// Get loads the record into out and reports whether it existed.
	Get(ctx context.Context, table string, key Key, out interface{}) (bool, error)
	Put(ctx context.Context, table string, item interface{}) error
	// Update applies the assignments, in order, as a single SET expression.
	Update(ctx context.Context, table string, key Key, set []Assignment) error
	Delete(ctx context.Context, table string, key Key) error
	// Query loads every record matching the key condition into out, which
	// must be a pointer to a slice. An empty index queries the base table.
	Query(ctx context.Context, table string, index string, cond Condition, out interface{}) error
	// Scan loads every record matching all filters into out, which must be a
	// pointer to a slice. No filters returns the whole table.
	Scan(ctx context.Context, table string, filters []Condition, out interface{}) error
}
