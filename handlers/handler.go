// Package handlers maps the REST surface onto the engine and the store,
// translating domain failures into the contract's error triples.
package handlers

import (
	"go.uber.org/zap"

	"unison/friends"
	"unison/store"
)

type Handler struct {
	store   store.Store
	tokens  *store.TokenIssuer
	friends *friends.Service
	log     *zap.Logger
}

func New(st store.Store, tokens *store.TokenIssuer, fr *friends.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: st, tokens: tokens, friends: fr, log: log}
}
