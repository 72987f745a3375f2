package browse

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/models"
)

// service implements the Service interface
type service struct {
	sessions *Sessions
	catalog  Catalog
}

// NewService creates a new browse service
func NewService(sessions *Sessions, catalog Catalog) Service {
	return &service{sessions: sessions, catalog: catalog}
}

func (s *service) session(visitorID uuid.UUID) (*Session, error) {
	if visitorID == uuid.Nil {
		return nil, models.ErrInvalidVisitorID
	}
	return s.sessions.Get(visitorID), nil
}

func (s *service) State(_ context.Context, visitorID uuid.UUID) (*StateResponse, error) {
	sess, err := s.session(visitorID)
	if err != nil {
		return nil, err
	}
	return ToStateResponse(sess, s.catalog, false), nil
}

// Select opens code. Unknown codes leave the session untouched.
func (s *service) Select(_ context.Context, visitorID uuid.UUID, code string) (*StateResponse, error) {
	sess, err := s.session(visitorID)
	if err != nil {
		return nil, err
	}
	changed := sess.Controller.Select(code)
	return ToStateResponse(sess, s.catalog, changed), nil
}

func (s *service) Deselect(_ context.Context, visitorID uuid.UUID) (*StateResponse, error) {
	sess, err := s.session(visitorID)
	if err != nil {
		return nil, err
	}
	changed := sess.Controller.Deselect()
	return ToStateResponse(sess, s.catalog, changed), nil
}

func (s *service) Navigate(_ context.Context, visitorID uuid.UUID, direction Direction) (*StateResponse, error) {
	sess, err := s.session(visitorID)
	if err != nil {
		return nil, err
	}
	_, changed := sess.Controller.Navigate(direction)
	return ToStateResponse(sess, s.catalog, changed), nil
}

func (s *service) Back(_ context.Context, visitorID uuid.UUID) (*StateResponse, error) {
	sess, err := s.session(visitorID)
	if err != nil {
		return nil, err
	}
	moved := sess.History.Back()
	return ToStateResponse(sess, s.catalog, moved), nil
}

func (s *service) Forward(_ context.Context, visitorID uuid.UUID) (*StateResponse, error) {
	sess, err := s.session(visitorID)
	if err != nil {
		return nil, err
	}
	moved := sess.History.Forward()
	return ToStateResponse(sess, s.catalog, moved), nil
}

func (s *service) SetSection(_ context.Context, visitorID uuid.UUID, id string) (*StateResponse, error) {
	sess, err := s.session(visitorID)
	if err != nil {
		return nil, err
	}
	if err := sess.Controller.SetActiveSection(id); err != nil {
		return nil, err
	}
	return ToStateResponse(sess, s.catalog, true), nil
}

// OpenLocation starts a fresh session from a deep link query.
func (s *service) OpenLocation(_ context.Context, visitorID uuid.UUID, query url.Values) (*StateResponse, error) {
	if visitorID == uuid.Nil {
		return nil, models.ErrInvalidVisitorID
	}
	sess := s.sessions.Open(visitorID, query)
	return ToStateResponse(sess, s.catalog, true), nil
}
