// Package store provides the key-value persistence layer and its SQLite and
// in-memory implementations.
package store

import "context"

// Keys under which the tracker persists each entity.
const (
	KeyProfile   = "recruit.profile"
	KeySchools   = "recruit.schools"
	KeyOutreach  = "recruit.outreach"
	KeyChat      = "recruit.chat"
	KeyReelPlan  = "recruit.reelPlan"
	KeyBrandName = "recruit.brandName"
	KeyBotName   = "recruit.botName"
)

// AllKeys lists every persisted key.
var AllKeys = []string{
	KeyProfile, KeySchools, KeyOutreach, KeyChat, KeyReelPlan, KeyBrandName, KeyBotName,
}

// KV is a string-to-string store. A Get error means the store is unavailable;
// a missing key is reported with ok == false and a nil error.
type KV interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// BatchSetter is implemented by stores that can write several keys at once.
// Either every pair is stored or none is.
type BatchSetter interface {
	SetMany(ctx context.Context, values map[string]string) error
}
