package ent

// The sql/lock feature is required: the store and the work pool claim rows
// with ForUpdate / FOR UPDATE SKIP LOCKED.
//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
