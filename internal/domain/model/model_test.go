package model

import "testing"

func TestRefundStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   RefundStatus
		value string
	}{
		{"pending", RefundStatusPending, "PENDING"},
		{"approved", RefundStatusApproved, "APPROVED"},
		{"rejected", RefundStatusRejected, "REJECTED"},
		{"cancelled", RefundStatusCancelled, "CANCELLED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestRefundStatusValid(t *testing.T) {
	for _, s := range []RefundStatus{RefundStatusPending, RefundStatusApproved, RefundStatusRejected, RefundStatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if RefundStatus("SHIPPED").Valid() {
		t.Fatal("expected unknown status to be invalid")
	}
	if RefundStatus("").Valid() {
		t.Fatal("expected empty status to be invalid")
	}
}

func TestRefundStatusClosed(t *testing.T) {
	if RefundStatusPending.Closed() {
		t.Fatal("pending must stay open")
	}
	for _, s := range []RefundStatus{RefundStatusApproved, RefundStatusRejected, RefundStatusCancelled} {
		if !s.Closed() {
			t.Fatalf("expected %s to be closed", s)
		}
	}
	if RefundStatus("SHIPPED").Closed() {
		t.Fatal("unknown status must not report closed")
	}
}
