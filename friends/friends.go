// Package friends holds the friend-relationship engine: the state
// machine, authorization rules and view projection for pairwise friend
// relations. All persistence goes through the Gateway interface.
package friends

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"unison/models"
	"unison/store"
)

var (
	// ErrSelfRequest rejects a request where requester and target are
	// the same account.
	ErrSelfRequest = errors.New("cannot send a friend request to yourself")
	// ErrTargetNotFound means the requested account does not exist.
	ErrTargetNotFound = errors.New("target user not found")
	// ErrRelationExists enforces at most one relation per unordered pair.
	ErrRelationExists = errors.New("a relation between these users already exists")
	// ErrRelationNotFound covers both a missing relation and a caller
	// who is not allowed to act on it, so existence is never leaked.
	ErrRelationNotFound = errors.New("relation not found")
	// ErrRelationSettled rejects transitions out of accepted/refused.
	ErrRelationSettled = errors.New("relation already settled")
	// ErrReasonRequired keeps a refusal distinguishable from pending.
	ErrReasonRequired = errors.New("refusal requires a reason")
)

// Gateway is the slice of the storage surface the engine needs.
type Gateway interface {
	AccountByID(ctx context.Context, id string) (*models.User, error)
	RelationsInvolving(ctx context.Context, accountID string) ([]*models.FriendRelation, error)
	RelationBetween(ctx context.Context, a, b string) (*models.FriendRelation, error)
	CreateRelation(ctx context.Context, requesterID, targetID string) (*models.FriendRelation, error)
	Relation(ctx context.Context, id string) (*models.FriendRelation, error)
	SetRelationOutcome(ctx context.Context, id string, accepted bool, reason string) (*models.FriendRelation, error)
}

// Notifier pushes friend-lifecycle events to a connected user. The
// websocket hub implements it; a nil Notifier disables delivery.
type Notifier interface {
	Notify(userID, event string, payload interface{})
}

type Service struct {
	gw     Gateway
	notify Notifier
	log    *zap.Logger
}

func NewService(gw Gateway, notify Notifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gw: gw, notify: notify, log: log}
}

// List returns the viewer's relations projected onto the counterpart,
// in the order the gateway yields them.
func (s *Service) List(ctx context.Context, viewerID string) ([]*models.FriendView, error) {
	relations, err := s.gw.RelationsInvolving(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]*models.FriendView, 0, len(relations))
	for _, rel := range relations {
		view, err := models.ProjectView(rel, viewerID)
		if err != nil {
			// The gateway only returns relations involving the viewer,
			// so a projection failure is a data integrity problem.
			s.log.Error("skipping unprojectable relation",
				zap.String("relation", rel.ID), zap.String("viewer", viewerID))
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// Request creates a pending relation with the viewer as requester. The
// pair must not already have a relation in either direction.
func (s *Service) Request(ctx context.Context, viewerID, targetID string) (*models.FriendRelation, error) {
	if viewerID == targetID {
		return nil, ErrSelfRequest
	}

	if _, err := s.gw.AccountByID(ctx, targetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	_, err := s.gw.RelationBetween(ctx, viewerID, targetID)
	if err == nil {
		return nil, ErrRelationExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	rel, err := s.gw.CreateRelation(ctx, viewerID, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	s.log.Info("friend request created",
		zap.String("relation", rel.ID),
		zap.String("requester", viewerID),
		zap.String("recipient", targetID))
	s.emit(targetID, "friend.requested", rel, targetID)
	return rel, nil
}

// Approve sets a pending relation to accepted and returns the viewer's
// projection of it. Only the recipient may approve.
func (s *Service) Approve(ctx context.Context, viewerID, relationID string) (*models.FriendView, error) {
	rel, err := s.authorize(ctx, viewerID, relationID)
	if err != nil {
		return nil, err
	}

	updated, err := s.gw.SetRelationOutcome(ctx, rel.ID, true, "")
	if err != nil {
		return nil, err
	}

	s.log.Info("friend request approved",
		zap.String("relation", rel.ID), zap.String("recipient", viewerID))
	s.emit(updated.User1ID, "friend.approved", updated, updated.User1ID)
	return models.ProjectView(updated, viewerID)
}

// Refuse sets a pending relation to refused with a non-empty reason.
// Only the recipient may refuse.
func (s *Service) Refuse(ctx context.Context, viewerID, relationID, reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}

	rel, err := s.authorize(ctx, viewerID, relationID)
	if err != nil {
		return err
	}

	updated, err := s.gw.SetRelationOutcome(ctx, rel.ID, false, reason)
	if err != nil {
		return err
	}

	s.log.Info("friend request refused",
		zap.String("relation", rel.ID), zap.String("recipient", viewerID))
	s.emit(updated.User1ID, "friend.refused", updated, updated.User1ID)
	return nil
}

// authorize loads a relation and checks the viewer may settle it. A
// missing relation and a forbidden caller produce the same error.
func (s *Service) authorize(ctx context.Context, viewerID, relationID string) (*models.FriendRelation, error) {
	rel, err := s.gw.Relation(ctx, relationID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRelationNotFound
	}
	if err != nil {
		return nil, err
	}
	if rel.User2ID != viewerID {
		return nil, ErrRelationNotFound
	}
	if rel.Outcome() != models.OutcomePending {
		return nil, ErrRelationSettled
	}
	return rel, nil
}

func (s *Service) emit(userID, event string, rel *models.FriendRelation, asViewer string) {
	if s.notify == nil {
		return
	}
	view, err := models.ProjectView(rel, asViewer)
	if err != nil {
		return
	}
	s.notify.Notify(userID, event, view)
}
