package models

import (
	"errors"
	"time"
)

// RelationOutcome is the explicit lifecycle state of a friend relation.
// Storage keeps the accepted/refuseReason pair for wire compatibility;
// Outcome derives the unambiguous state from it.
type RelationOutcome int

const (
	OutcomePending RelationOutcome = iota
	OutcomeAccepted
	OutcomeRefused
)

func (o RelationOutcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRefused:
		return "refused"
	default:
		return "pending"
	}
}

// FriendRelation stores one pairwise friend connection. User1 is the
// requester, User2 the recipient; only the recipient may settle it.
type FriendRelation struct {
	ID           string    `json:"id"`
	User1ID      string    `json:"user1"`
	User2ID      string    `json:"user2"`
	Accepted     bool      `json:"accepted"`
	RefuseReason string    `json:"refuseReason"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`

	// Expanded participant profiles, attached by the store.
	User1 *UserResponse `json:"-"`
	User2 *UserResponse `json:"-"`
}

func (r *FriendRelation) Outcome() RelationOutcome {
	switch {
	case r.Accepted:
		return OutcomeAccepted
	case r.RefuseReason != "":
		return OutcomeRefused
	default:
		return OutcomePending
	}
}

func (r *FriendRelation) Involves(userID string) bool {
	return r.User1ID == userID || r.User2ID == userID
}

// FriendView is the caller-relative projection of a relation. Friend is
// always the other participant, and Acceptable is true only when the
// viewer is the recipient side of the relation.
type FriendView struct {
	ID           string       `json:"id"`
	Friend       UserResponse `json:"friend"`
	Accepted     bool         `json:"accepted"`
	RefuseReason string       `json:"refuseReason"`
	Acceptable   bool         `json:"acceptable"`
	Updated      time.Time    `json:"updated"`
}

var ErrNotParticipant = errors.New("viewer is not a participant of the relation")

// ProjectView builds the FriendView of rel as seen by viewerID. It is a
// pure function of its inputs.
func ProjectView(rel *FriendRelation, viewerID string) (*FriendView, error) {
	var counterpart *UserResponse
	switch viewerID {
	case rel.User1ID:
		counterpart = rel.User2
	case rel.User2ID:
		counterpart = rel.User1
	default:
		return nil, ErrNotParticipant
	}

	view := &FriendView{
		ID:           rel.ID,
		Accepted:     rel.Accepted,
		RefuseReason: rel.RefuseReason,
		Acceptable:   viewerID == rel.User2ID,
		Updated:      rel.Updated,
	}
	if counterpart != nil {
		view.Friend = *counterpart
	}
	return view, nil
}
