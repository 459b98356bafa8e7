package types_test

import (
	"testing"

	"github.com/bytedance/sonic"
	restTypes "github.com/designerscolony/colony/internal/rest/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyFeedEnvelopeKeepsAllKeys(t *testing.T) {
	t.Parallel()

	// Every posting decaying out of the window leaves an empty feed;
	// the envelope must still carry the jobs array and counters.
	data, err := sonic.Marshal(restTypes.JobsResponse{
		Success: true,
		Jobs:    []restTypes.Job{},
	})
	require.NoError(t, err)

	payload := string(data)
	assert.Contains(t, payload, `"jobs":[]`)
	assert.Contains(t, payload, `"total":0`)
	assert.Contains(t, payload, `"hasMore":false`)
	assert.NotContains(t, payload, `"error"`)
}
