// uuid simple generator that allows mocking
package uuid

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mockuuid -source=uuid.go

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// ULIDGenerator implements the Generator interface using lexically sortable ULIDs.
// Sorting IDs sorts records by creation time, which keeps list output stable.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *rand.Rand
}

// NewULIDGenerator creates a new ULIDGenerator
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// New generates a new ULID string
func (g *ULIDGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}
