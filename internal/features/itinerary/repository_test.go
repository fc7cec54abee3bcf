package itinerary

import "testing"

func TestItineraryUpdate_SetFields_NestedFlights(t *testing.T) {
	flights := FlightDetails{
		Departure: FlightInfo{From: "MAD", To: "TLV", Date: "2025-03-15", Time: "08:30", Airline: "Iberia", FlightNumber: "IB3316"},
		Return:    FlightInfo{From: "TLV", To: "MAD", Date: "2025-03-22", Time: "21:00", Airline: "Iberia", FlightNumber: "IB3317"},
	}

	update := &ItineraryUpdate{Flights: &flights}
	set := update.setFields()

	got, ok := set["flights"].(FlightDetails)
	if !ok {
		t.Fatalf("flights field has type %T, want FlightDetails", set["flights"])
	}
	if got.Return.FlightNumber != "IB3317" {
		t.Errorf("return flight number = %q, want %q", got.Return.FlightNumber, "IB3317")
	}

	for _, key := range []string{"group_name", "included", "not_included", "daily_schedule"} {
		if _, present := set[key]; present {
			t.Errorf("unset field %q leaked into the update document", key)
		}
	}
}

func TestItineraryUpdate_SetFields_EmptyListIsExplicit(t *testing.T) {
	// An explicitly present empty list clears the stored list; it must
	// not be confused with an omitted field.
	empty := []string{}
	update := &ItineraryUpdate{Included: &empty}

	set := update.setFields()

	included, present := set["included"]
	if !present {
		t.Fatal("explicitly set empty list missing from the update document")
	}
	if list, ok := included.([]string); !ok || len(list) != 0 {
		t.Errorf("included = %v, want empty []string", included)
	}
	if _, present := set["not_included"]; present {
		t.Error("unset field not_included leaked into the update document")
	}
}
