package models

import (
	"encoding/json"
	"testing"
)

func TestPriceDecodesLegacyNumber(t *testing.T) {
	var p Price
	if err := json.Unmarshal([]byte(`25.9`), &p); err != nil {
		t.Fatal(err)
	}
	if p.OnRequest || p.Amount != 25.9 {
		t.Fatalf("expected Priced(25.9), got %+v", p)
	}
}

func TestPriceZeroMeansOnRequest(t *testing.T) {
	var p Price
	if err := json.Unmarshal([]byte(`0`), &p); err != nil {
		t.Fatal(err)
	}
	if !p.OnRequest {
		t.Fatalf("expected legacy zero to decode as on request, got %+v", p)
	}
	if p.LegacyAmount() != 0 {
		t.Fatalf("expected legacy amount 0, got %v", p.LegacyAmount())
	}
}

func TestPriceDecodesTaggedForm(t *testing.T) {
	var p Price
	if err := json.Unmarshal([]byte(`{"amount":15,"onRequest":false}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.OnRequest || p.Amount != 15 {
		t.Fatalf("expected Priced(15), got %+v", p)
	}

	var onRequest Price
	if err := json.Unmarshal([]byte(`{"amount":99,"onRequest":true}`), &onRequest); err != nil {
		t.Fatal(err)
	}
	if !onRequest.OnRequest || onRequest.Amount != 0 {
		t.Fatalf("expected amount dropped for on-request price, got %+v", onRequest)
	}
}

func TestPricedNonPositiveAmountIsOnRequest(t *testing.T) {
	for _, amount := range []float64{0, -5} {
		if p := Priced(amount); !p.OnRequest {
			t.Fatalf("Priced(%v): expected on request, got %+v", amount, p)
		}
	}
}

func TestPriceJSONRoundTrip(t *testing.T) {
	original := Priced(18.5)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Price
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != original {
		t.Fatalf("round trip mismatch: %+v != %+v", decoded, original)
	}
}

func TestPublicProductShape(t *testing.T) {
	product := Product{
		Name:     "Vaso",
		Price:    PriceOnRequest(),
		Category: CategoryCeramics,
		InStock:  true,
	}

	public := product.Public()

	if public.Price != 0 || !public.OnRequest {
		t.Fatalf("expected on-request public price, got %+v", public)
	}
	if public.Image != "/images/default.jpg" {
		t.Fatalf("expected default image fallback, got %q", public.Image)
	}
	if !public.Available {
		t.Fatal("expected available to mirror inStock")
	}
}

func TestAddressRenderableCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
		want   bool
	}{
		{"lisbon", []float64{38.7223, -9.1393}, true},
		{"missing", nil, false},
		{"one value", []float64{38.7}, false},
		{"latitude out of range", []float64{91, 0}, false},
		{"longitude out of range", []float64{0, -181}, false},
		{"boundary", []float64{-90, 180}, true},
	}

	for _, tt := range tests {
		address := Address{Coordinates: tt.coords}
		if got := address.RenderableCoordinates(); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
