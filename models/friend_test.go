package models

import (
	"testing"
	"time"
)

func testRelation() *FriendRelation {
	now := time.Now()
	return &FriendRelation{
		ID:      "rel000000000001",
		User1ID: "usera0000000001",
		User2ID: "userb0000000001",
		Created: now,
		Updated: now,
		User1:   &UserResponse{ID: "usera0000000001", Name: "Alice"},
		User2:   &UserResponse{ID: "userb0000000001", Name: "Bob"},
	}
}

func TestProjectViewCounterpart(t *testing.T) {
	rel := testRelation()

	view, err := ProjectView(rel, rel.User1ID)
	if err != nil {
		t.Fatalf("ProjectView(user1): %v", err)
	}
	if view.Friend.ID != rel.User2ID {
		t.Errorf("requester view shows %q, want counterpart %q", view.Friend.ID, rel.User2ID)
	}
	if view.Acceptable {
		t.Error("requester must not be able to accept their own request")
	}

	view, err = ProjectView(rel, rel.User2ID)
	if err != nil {
		t.Fatalf("ProjectView(user2): %v", err)
	}
	if view.Friend.ID != rel.User1ID {
		t.Errorf("recipient view shows %q, want counterpart %q", view.Friend.ID, rel.User1ID)
	}
	if !view.Acceptable {
		t.Error("recipient view must be acceptable")
	}
}

func TestProjectViewNonParticipant(t *testing.T) {
	if _, err := ProjectView(testRelation(), "userc0000000001"); err != ErrNotParticipant {
		t.Errorf("got %v, want ErrNotParticipant", err)
	}
}

func TestOutcomeTriState(t *testing.T) {
	cases := []struct {
		name     string
		accepted bool
		reason   string
		want     RelationOutcome
	}{
		{"pending", false, "", OutcomePending},
		{"accepted", true, "", OutcomeAccepted},
		{"refused", false, "too busy", OutcomeRefused},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rel := testRelation()
			rel.Accepted = tc.accepted
			rel.RefuseReason = tc.reason
			if got := rel.Outcome(); got != tc.want {
				t.Errorf("Outcome() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProjectViewCarriesRelationState(t *testing.T) {
	rel := testRelation()
	rel.RefuseReason = "not now"

	view, err := ProjectView(rel, rel.User1ID)
	if err != nil {
		t.Fatal(err)
	}
	if view.ID != rel.ID || view.RefuseReason != "not now" || view.Accepted {
		t.Errorf("view does not mirror relation state: %+v", view)
	}
}
