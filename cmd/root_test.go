package cmd

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"pitchplot/scale"
)

func TestLoadTableSharedAcrossGoroutines(t *testing.T) {
	// the serve handlers hit LoadTable concurrently, so simultaneous
	// first calls must still yield one table
	var wg sync.WaitGroup
	tables := make([]*scale.Table, 4)
	for i := 0; i < len(tables); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = LoadTable()
		}(i)
	}
	wg.Wait()

	assert := assert.New(t)
	for _, tbl := range tables {
		assert.NotNil(tbl)
		assert.Same(tables[0], tbl)
	}
}
