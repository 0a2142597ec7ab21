// Package flight implements the flight-information function: it validates a
// flight query, turns it into a travel-agent prompt, asks the completion
// agent, and shapes the outcome into a response envelope.
package flight

// TripType discriminates between one-way and round-trip queries.
type TripType string

const (
	OneWay    TripType = "one-way"
	RoundTrip TripType = "round-trip"
)

// Query is a validated flight query. It is built once per invocation and
// never modified afterwards.
type Query struct {
	FromCity      string   `json:"fromCity" validate:"required"`
	ToCity        string   `json:"toCity" validate:"required"`
	DepartureDate string   `json:"departureDate" validate:"required"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	TripType      TripType `json:"tripType" validate:"oneof=one-way round-trip"`
}

// HasReturn reports whether the prompt should ask for return flights.
func (q Query) HasReturn() bool {
	return q.TripType == RoundTrip && q.ReturnDate != ""
}

// Message is a single prompt message sent to the agent.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Info is the success body of an invocation.
type Info struct {
	FlightInfo    string   `json:"flightInfo"`
	CompletionID  string   `json:"completionId"`
	FromCity      string   `json:"fromCity"`
	ToCity        string   `json:"toCity"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    *string  `json:"returnDate"`
	TripType      TripType `json:"tripType"`
}

// Envelope is the fixed shape returned for every invocation outcome. Body is
// an *Info on success and an errors.Body otherwise.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Body       interface{} `json:"body"`
}
