// Package store contains the DynamoDB implementation of the
// domain.RecordStore interface. The store is deliberately unaware of the
// records it holds: it translates Go values to and from attribute maps and
// leaves every business rule to the services.
package store
