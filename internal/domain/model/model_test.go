package model

import "testing"

func TestParseProviderAcceptsLegacyVariants(t *testing.T) {
	cases := map[string]DeliveryProvider{
		"DELHIVERY": ProviderDelhivery,
		"delhivery": ProviderDelhivery,
		"Delhivery": ProviderDelhivery,
		"SELF":      ProviderSelf,
		"self":      ProviderSelf,
		" self ":    ProviderSelf,
	}
	for in, want := range cases {
		got, ok := ParseProvider(in)
		if !ok || got != want {
			t.Fatalf("ParseProvider(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseProvider("courier"); ok {
		t.Fatal("expected unknown provider to be rejected")
	}
}

func TestParseDeliveryStatusNormalizesInTransit(t *testing.T) {
	got, ok := ParseDeliveryStatus("IN_TRANSIT")
	if !ok || got != DeliveryStatusOutForDelivery {
		t.Fatalf("IN_TRANSIT should normalize to OUT_FOR_DELIVERY, got %q", got)
	}
	got, ok = ParseDeliveryStatus("out_for_delivery")
	if !ok || got != DeliveryStatusOutForDelivery {
		t.Fatalf("lowercase input should be accepted, got %q", got)
	}
	if _, ok := ParseDeliveryStatus("LOST"); ok {
		t.Fatal("expected unknown delivery status to be rejected")
	}
}

func TestPaiseString(t *testing.T) {
	cases := map[Paise]string{
		12550:  "125.50",
		110000: "1100.00",
		5:      "0.05",
		-250:   "-2.50",
	}
	for in, want := range cases {
		if got := in.String(); got != want {
			t.Fatalf("Paise(%d).String() = %q, want %q", in, got, want)
		}
	}
}

func TestRecomputeTotals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ItemID: "a", Quantity: 2, UnitPrice: 25000, Weight: 0.5},
			{ItemID: "b", Quantity: 1, UnitPrice: 50000, Weight: 1.25},
		},
		ShippingTotal: 5000,
	}
	order.RecomputeTotals()

	if order.Subtotal != 100000 {
		t.Fatalf("unexpected subtotal %d", order.Subtotal)
	}
	if order.Tax != 5000 {
		t.Fatalf("expected 5%% tax of 5000, got %d", order.Tax)
	}
	if order.TotalAmount != 110000 {
		t.Fatalf("unexpected total %d", order.TotalAmount)
	}
	if order.TotalAmount != order.Subtotal+order.Tax+order.ShippingTotal {
		t.Fatal("totals do not reconcile")
	}
	if order.TotalWeight != 2.25 {
		t.Fatalf("unexpected weight %f", order.TotalWeight)
	}
}

func TestTaxOnRounds(t *testing.T) {
	// 5% of 99 paise is 4.95, rounds to 5.
	if got := TaxOn(99); got != 5 {
		t.Fatalf("TaxOn(99) = %d, want 5", got)
	}
	// 5% of 30 paise is 1.5, rounds up to 2.
	if got := TaxOn(30); got != 2 {
		t.Fatalf("TaxOn(30) = %d, want 2", got)
	}
}
