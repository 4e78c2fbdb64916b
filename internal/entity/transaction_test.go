package entity

import "testing"

func TestTransactionTypeValid(t *testing.T) {
	for _, typ := range []TransactionType{TransactionInbound, TransactionSale, TransactionAdjustment} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	if TransactionType("transfer").Valid() {
		t.Error("unknown type should be invalid")
	}
}

func TestTransactionTypePrefix(t *testing.T) {
	cases := map[TransactionType]string{
		TransactionInbound:          "INB",
		TransactionSale:             "SAL",
		TransactionAdjustment:       "ADJ",
		TransactionType("transfer"): "TXN",
	}
	for typ, want := range cases {
		if got := typ.Prefix(); got != want {
			t.Errorf("Prefix(%q) = %q, want %q", typ, got, want)
		}
	}
}

func TestTransactionStatusValid(t *testing.T) {
	for _, s := range []TransactionStatus{
		StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled,
	} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if TransactionStatus("returned").Valid() {
		t.Error("unknown status should be invalid")
	}
}
