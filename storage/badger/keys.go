package badger

import (
	"fmt"

	"github.com/pantrylabs/foodsearch/core"
)

// Key prefixes for different data types
const (
	vectorEntryPrefix = "vecent"
)

// makeVectorEntryKey generates a key for a cached embedding by content ID.
func makeVectorEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", vectorEntryPrefix, id))
}
