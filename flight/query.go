package flight

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teilomillet/flightinfo/errors"
)

// RequiredMessage is returned when a required query field is missing.
const RequiredMessage = "fromCity, toCity, and departureDate are required parameters"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseQuery builds a Query from invocation arguments. tripType defaults to
// one-way when missing or empty. Failures are validation errors.
func ParseQuery(requestID string, args map[string]interface{}) (Query, error) {
	q := Query{
		FromCity:      stringArg(args, "fromCity"),
		ToCity:        stringArg(args, "toCity"),
		DepartureDate: stringArg(args, "departureDate"),
		ReturnDate:    stringArg(args, "returnDate"),
		TripType:      TripType(stringArg(args, "tripType")),
	}
	if q.TripType == "" {
		q.TripType = OneWay
	}

	err := validate.Struct(q)
	if err == nil {
		return q, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Query{}, errors.NewServerError(requestID, fmt.Errorf("validate query: %w", err))
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return Query{}, errors.NewValidationError(requestID, RequiredMessage, map[string]interface{}{
			"missing": missing,
		})
	}

	return Query{}, errors.NewValidationError(requestID,
		fmt.Sprintf("tripType must be one of: %s, %s", OneWay, RoundTrip),
		map[string]interface{}{"tripType": string(q.TripType)},
	)
}

// stringArg reads args[key] as a string. Missing, nil and falsy values
// (false, zero numbers, empty strings and collections) are empty.
func stringArg(args map[string]interface{}, key string) string {
	v := args[key]
	if isFalsy(v) {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func isFalsy(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}
