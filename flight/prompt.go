package flight

import (
	"bytes"
	"fmt"
	"text/template"
)

// SystemPrompt is the travel-agent persona sent as the system message.
const SystemPrompt = "You are an expert travel agent who specializes in finding specific flight information and providing direct booking links. Your responses should be practical and focused on helping travelers find and book their flights easily. Use real-time flight data and provide accurate information."

const flightLine = "Airline FlightNumber: Departing [Airport] at [Time], arriving [Airport] at [Time] (Flight Duration: [Duration], non-stop/with layover)"

const promptText = `You are a travel agent and your task is to show users flights along with flight numbers based on the source and destination they input.

Please provide flight information in the following format:

Outbound Flights ({{.FromCity}} to {{.ToCity}} on {{.DepartureDate}}):
` + flightLine + `{{if .HasReturn}}
Return Flights ({{.ToCity}} to {{.FromCity}} on {{.ReturnDate}}):
` + flightLine + `{{end}}

For each flight, include:
- The type of flight (Boeing 737, Airbus A320, etc.)
- Airline name and flight number
- Airport codes
- Exact departure and arrival times
- Flight duration
- Layover information if applicable
- Direct booking links from Skyscanner, Kayak, or Expedia

Format your response in markdown with clear sections. Do NOT include any extra notes, disclaimers, or introductory text. Only output the flight details as described.`

var promptTemplate = template.Must(template.New("flight").Parse(promptText))

// BuildPrompt renders the user prompt for q.
func BuildPrompt(q Query) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, q); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// Messages returns the system and user messages for q, in that order.
func Messages(q Query) ([]Message, error) {
	prompt, err := BuildPrompt(q)
	if err != nil {
		return nil, err
	}
	return []Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: prompt},
	}, nil
}
