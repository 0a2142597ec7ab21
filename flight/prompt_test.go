package flight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name       string
		query      Query
		wantReturn bool
	}{
		{
			name:  "one-way",
			query: Query{FromCity: "New York", ToCity: "London", DepartureDate: "2024-03-15", TripType: OneWay},
		},
		{
			name:       "round-trip with return date",
			query:      Query{FromCity: "San Francisco", ToCity: "Tokyo", DepartureDate: "2024-04-01", ReturnDate: "2024-04-15", TripType: RoundTrip},
			wantReturn: true,
		},
		{
			name:  "round-trip without return date",
			query: Query{FromCity: "San Francisco", ToCity: "Tokyo", DepartureDate: "2024-04-01", TripType: RoundTrip},
		},
		{
			name:  "one-way ignores return date",
			query: Query{FromCity: "Paris", ToCity: "Rome", DepartureDate: "2024-05-01", ReturnDate: "2024-05-09", TripType: OneWay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := BuildPrompt(tt.query)
			require.NoError(t, err)

			outbound := "Outbound Flights (" + tt.query.FromCity + " to " + tt.query.ToCity + " on " + tt.query.DepartureDate + "):\n" + flightLine
			assert.Contains(t, prompt, outbound)
			assert.Contains(t, prompt, "Direct booking links from Skyscanner, Kayak, or Expedia")

			if tt.wantReturn {
				section := "\nReturn Flights (" + tt.query.ToCity + " to " + tt.query.FromCity + " on " + tt.query.ReturnDate + "):\n" + flightLine
				assert.Contains(t, prompt, outbound+section+"\n\nFor each flight, include:")
			} else {
				assert.NotContains(t, prompt, "Return Flights")
				// no blank placeholder left behind
				assert.Contains(t, prompt, outbound+"\n\nFor each flight, include:")
			}
		})
	}
}

func TestBuildPromptDoesNotEscape(t *testing.T) {
	prompt, err := BuildPrompt(Query{FromCity: "St. John's", ToCity: "Zürich <ZRH>", DepartureDate: "2024-06-01", TripType: OneWay})
	require.NoError(t, err)

	assert.Contains(t, prompt, "(St. John's to Zürich <ZRH> on 2024-06-01)")
}

func TestMessages(t *testing.T) {
	q := Query{FromCity: "New York", ToCity: "London", DepartureDate: "2024-03-15", TripType: OneWay}

	messages, err := Messages(q)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, SystemPrompt, messages[0].Content)
	assert.Equal(t, "user", messages[1].Role)
	assert.True(t, strings.HasPrefix(messages[1].Content, "You are a travel agent"))
}
