package dashboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryStatsPayloadKeys(t *testing.T) {
	payload, err := json.Marshal(CountryStats{SafeguardingIncidents: 2})
	require.NoError(t, err)

	var keys map[string]int
	require.NoError(t, json.Unmarshal(payload, &keys))
	assert.Contains(t, keys, "safeguarding_incidents")
	assert.Equal(t, 2, keys["safeguarding_incidents"])
}
