package continuum

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuumAddAndCompile(t *testing.T) {
	c := New()
	for _, ev := range lifecycleEvents() {
		c.Add(ev)
	}
	require.Equal(t, len(lifecycleEvents()), c.Len())

	timeline, err := c.Compile()
	require.NoError(t, err)
	assert.Equal(t, []Date{Genesis, "2020-01-01", "2020-01-02"}, timeline.Instants())
}

func TestContinuumCompileIsRepeatable(t *testing.T) {
	c := New()
	c.AddAll(lifecycleEvents()...)

	first, err := c.Compile()
	require.NoError(t, err)
	second, err := c.Compile()
	require.NoError(t, err)

	// Compiling does not consume the accumulated events.
	assert.Equal(t, len(lifecycleEvents()), c.Len())

	fpFirst, err := first.Fingerprint()
	require.NoError(t, err)
	fpSecond, err := second.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fpFirst, fpSecond)
}

func TestContinuumOptionsApplyToEveryCompile(t *testing.T) {
	c := New(WithTenureRecords())
	c.AddAll(lifecycleEvents()...)

	timeline, err := c.Compile()
	require.NoError(t, err)

	inst, ok := timeline.Instant(Genesis)
	require.True(t, ok)
	assert.True(t, inst.TracksTenure())
}

func TestContinuumConcurrentAdd(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(InstantEvent{Date: Genesis})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
