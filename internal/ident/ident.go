// ABOUTME: Opaque unique ID tokens for notes, folders and accounts.
// ABOUTME: UUIDv4 with a timestamp+random fallback if generation fails.

package ident

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID returns a globally-unique opaque token. Collisions are the only
// contract; callers must not parse the value.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// uuid only fails when the entropy source does; degrade rather
		// than crash the in-memory model.
		return fmt.Sprintf("%d-%06d", time.Now().UnixNano(), rand.Intn(1_000_000))
	}
	return id.String()
}
