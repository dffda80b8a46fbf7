// Package idgen provides ports.IDGenerator implementations.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// UUID generates random version 4 UUIDs.
var UUID ports.IDGenerator = ports.IDGeneratorFunc(func() string {
	return uuid.NewString()
})

// ObjectID generates hex-encoded MongoDB ObjectIDs. The mongo storage
// adapter requires ids in this form.
var ObjectID ports.IDGenerator = ports.IDGeneratorFunc(func() string {
	return primitive.NewObjectID().Hex()
})

// Sequence returns a deterministic generator yielding prefix-1, prefix-2, ...
// It is safe for concurrent use.
func Sequence(prefix string) ports.IDGenerator {
	var n atomic.Int64
	return ports.IDGeneratorFunc(func() string {
		return prefix + "-" + strconv.FormatInt(n.Add(1), 10)
	})
}

// ForDriver picks the generator matching a storage driver name.
func ForDriver(driver string) ports.IDGenerator {
	if driver == "mongo" {
		return ObjectID
	}
	return UUID
}
