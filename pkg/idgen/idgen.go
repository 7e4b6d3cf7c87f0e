// Package idgen generates the opaque string identifiers assigned to catalog
// records at creation time. Snowflake ids are time-ordered, which preserves
// the original "creation timestamp as id" behavior without its collision
// window.
package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *snowflake.Node
)

// NextID returns a fresh unique identifier
func NextID() string {
	once.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			// Node number 1 is always in range; NewNode can only fail on an
			// out-of-range node id.
			panic(err)
		}
		node = n
	})
	return node.Generate().String()
}
