package postgresadapter

import (
	"reflect"
	"testing"
)

func TestLockOrderIsDeterministic(t *testing.T) {
	cases := []struct {
		name   string
		toID   string
		fromID string
		want   []string
	}{
		{name: "first vote has no previous", toID: "b", fromID: "", want: []string{"b"}},
		{name: "previous equals target", toID: "b", fromID: "b", want: []string{"b"}},
		{name: "previous sorts before target", toID: "b", fromID: "a", want: []string{"a", "b"}},
		{name: "target sorts before previous", toID: "a", fromID: "b", want: []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lockOrder(tc.toID, tc.fromID)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("lockOrder(%q, %q) = %v, want %v", tc.toID, tc.fromID, got, tc.want)
			}
		})
	}
}

func TestLockOrderAgreesForOppositeMoves(t *testing.T) {
	// A move a->b and a move b->a must lock the same pair in the same order.
	forward := lockOrder("b", "a")
	backward := lockOrder("a", "b")
	if !reflect.DeepEqual(forward, backward) {
		t.Fatalf("opposite moves lock in different orders: %v vs %v", forward, backward)
	}
}
