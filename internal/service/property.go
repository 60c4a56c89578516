// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// WHY A SEPARATE SERVICE LAYER?
// Without one, handlers do everything: parse HTTP, validate data, call the
// database, format responses. With a service layer, business logic is tested
// with plain Go function calls, reusable outside HTTP, and ignorant of SQL.
//
// DEPENDENCY INJECTION:
// PropertyService takes a repository.PropertyRepository (interface), NOT a
// *sqlite.DB (concrete type). In tests we pass an in-memory mock; in the
// server we pass SQLite. The service doesn't import the sqlite package at all.
//
// All validation lives HERE, not in the store. The store can be swapped for
// any document or relational backend without changing observable behaviour,
// because nothing relies on store-internal field constraints.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rs/xid"
	"github.com/sakif/property-board/internal/apperror"
	"github.com/sakif/property-board/internal/model"
	"github.com/sakif/property-board/internal/repository"
)

// PropertyService handles business logic for property listings.
// Stateless between requests — safe to share across concurrent handlers.
type PropertyService struct {
	repo   repository.PropertyRepository
	logger *slog.Logger
}

// NewPropertyService creates a new PropertyService.
// Go doesn't have constructors; the NewXxx convention takes all dependencies
// as parameters so the caller decides which implementations to inject.
func NewPropertyService(repo repository.PropertyRepository, logger *slog.Logger) *PropertyService {
	return &PropertyService{
		repo:   repo,
		logger: logger,
	}
}

// validateDraft enforces the field rules shared by Create and Update:
// title and location must be non-empty AFTER trimming, price must be present
// and not negative. It returns the trimmed title/location so the persisted
// record never carries surrounding whitespace.
//
// A nil price means the field was absent from the request. Full-replace
// semantics: a missing field is a validation failure, never "leave
// unchanged" — that decision is enforced here, not left to store defaults.
func validateDraft(draft model.PropertyDraft) (title, location string, price float64, err error) {
	title = strings.TrimSpace(draft.Title)
	location = strings.TrimSpace(draft.Location)

	if title == "" {
		return "", "", 0, apperror.ValidationFailed("title", "title is required")
	}
	if draft.Price == nil {
		return "", "", 0, apperror.ValidationFailed("price", "price is required")
	}
	if *draft.Price < 0 {
		return "", "", 0, apperror.ValidationFailed("price", "price must be zero or greater")
	}
	if location == "" {
		return "", "", 0, apperror.ValidationFailed("location", "location is required")
	}

	return title, location, *draft.Price, nil
}

// parseID rejects identifiers that don't parse in the store's id space.
// Records are keyed by xid, so anything xid can't decode could never name a
// record — that's InvalidID (→ 400), not NotFound (→ 404).
func parseID(id string) error {
	if _, err := xid.FromString(id); err != nil {
		return apperror.InvalidID(id)
	}
	return nil
}

// Create validates and saves a new property listing.
//
// The method accepts a draft, NOT an *http.Request — the service has zero
// knowledge of HTTP and returns domain errors (apperror.ValidationFailed),
// never status codes. The handler does the translation.
func (s *PropertyService) Create(ctx context.Context, draft model.PropertyDraft) (*model.Property, error) {
	title, location, price, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	property := &model.Property{
		Title:    title,
		Price:    price,
		Location: location,
	}

	// The repo fills in ID and timestamps. ctx flows through so the write is
	// cancelled if the HTTP request is aborted.
	if err := s.repo.Create(ctx, property); err != nil {
		s.logger.Error("failed to create property",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating property: %w", err)
	}

	s.logger.Info("property created",
		slog.String("id", property.ID),
		slog.String("title", property.Title),
	)

	return property, nil
}

// List returns the full current sequence of listings. No side effects; the
// only failure mode is store unavailability.
func (s *PropertyService) List(ctx context.Context) ([]model.Property, error) {
	properties, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list properties", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	return properties, nil
}

// GetByID retrieves a listing by its ID.
// Returns apperror.ErrInvalidID for a malformed id, apperror.ErrNotFound if
// no record with that id exists.
func (s *PropertyService) GetByID(ctx context.Context, id string) (*model.Property, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	// NotFound is a normal outcome, not worth an error log — it propagates
	// as a proper apperror already.
	return s.repo.GetByID(ctx, id)
}

// Update replaces the three mutable fields of an existing listing.
//
// STRATEGY: "Fetch then update"
// 1. Fetch the existing record (confirms it exists, keeps CreatedAt)
// 2. Replace title/price/location on the fetched copy
// 3. Save the result — the repo refreshes UpdatedAt
//
// This is a FULL replace: callers must supply all three fields, and a missing
// one fails validation (see validateDraft). Because no field is derived from
// the previous value, two racing updates need no read-modify-write
// sequencing — last write wins, and the store's per-record atomicity
// guarantees the row holds exactly one caller's payload.
func (s *PropertyService) Update(ctx context.Context, id string, draft model.PropertyDraft) (*model.Property, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	title, location, price, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	property.Title = title
	property.Price = price
	property.Location = location

	if err := s.repo.Update(ctx, property); err != nil {
		s.logger.Error("failed to update property",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating property: %w", err)
	}

	s.logger.Info("property updated",
		slog.String("id", property.ID),
		slog.String("title", property.Title),
	)

	return property, nil
}

// Delete removes a listing by its ID. The id is never valid again afterwards.
// Returns ErrInvalidID / ErrNotFound under the same rules as GetByID.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("property deleted", slog.String("id", id))
	return nil
}
