package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

// Error variables
var (
	ErrAdNotFound       = errors.New("ad not found")
	ErrNotAdAuthor      = errors.New("only the author can modify this ad")
	ErrCategoryRequired = errors.New("category is required")
	ErrCategoryNotFound = errors.New("category not found")
)

// Ad event types published to Kafka.
const (
	EventAdCreated = "ad.created"
	EventAdUpdated = "ad.updated"
	EventAdDeleted = "ad.deleted"
)

// AdReader defines read operations for ads.
type AdReader interface {
	List(ctx context.Context, filter models.AdFilter) ([]models.AdView, error)
	GetByID(ctx context.Context, adID uuid.UUID) (*models.AdView, error)
}

// AdWriter defines write operations for ads.
type AdWriter interface {
	Save(ctx context.Context, ad *models.AdDB) error
	Update(ctx context.Context, ad *models.AdDB) error
	Delete(ctx context.Context, adID uuid.UUID) error
}

// CategoryReader resolves category references.
type CategoryReader interface {
	GetByID(ctx context.Context, categoryID int64) (*models.CategoryDB, error)
	GetBySlug(ctx context.Context, slug string) (*models.CategoryDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AdService handles ad listing, creation, mutation and event publishing.
type AdService struct {
	reader      AdReader
	writer      AdWriter
	categories  CategoryReader
	kafkaWriter KafkaWriter
}

// NewAdService creates a new AdService.
func NewAdService(reader AdReader, writer AdWriter, categories CategoryReader, kafkaWriter KafkaWriter) *AdService {
	return &AdService{
		reader:      reader,
		writer:      writer,
		categories:  categories,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the ads matching the filter.
func (s *AdService) List(ctx context.Context, filter models.AdFilter) ([]models.AdView, error) {
	return s.reader.List(ctx, filter)
}

// ListByAuthor returns the author's own ads, newest first, including inactive ones.
func (s *AdService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.AdView, error) {
	return s.reader.List(ctx, models.AdFilter{AuthorID: &authorID})
}

// Get returns a single ad by id.
func (s *AdService) Get(ctx context.Context, adID uuid.UUID) (*models.AdView, error) {
	view, err := s.reader.GetByID(ctx, adID)
	if err != nil {
		logger.Log.Errorw("failed to get ad", "ad_id", adID, "err", err)
		return nil, err
	}
	if view == nil {
		return nil, ErrAdNotFound
	}
	return view, nil
}

// Create stores a new ad authored by the given principal. The category must
// resolve from the reference; the author always comes from the principal.
func (s *AdService) Create(ctx context.Context, authorID uuid.UUID, in models.AdCreate) (*models.AdView, error) {
	if in.Category.Kind == models.CategoryRefNone {
		return nil, ErrCategoryRequired
	}
	category, err := s.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	ad := &models.AdDB{
		AdID:        uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  category.CategoryID,
		ContactInfo: in.ContactInfo,
		AuthorID:    authorID,
		IsActive:    true,
	}

	if err := s.writer.Save(ctx, ad); err != nil {
		logger.Log.Errorw("failed to save ad", "err", err)
		return nil, err
	}

	view, err := s.reader.GetByID(ctx, ad.AdID)
	if err != nil {
		logger.Log.Errorw("failed to read back ad", "ad_id", ad.AdID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, EventAdCreated, ad.AdID, authorID)

	return view, nil
}

// Update applies a partial update to an ad. Only the author may update it.
func (s *AdService) Update(ctx context.Context, principalID, adID uuid.UUID, patch models.AdUpdate) (*models.AdView, error) {
	view, err := s.reader.GetByID(ctx, adID)
	if err != nil {
		logger.Log.Errorw("failed to get ad", "ad_id", adID, "err", err)
		return nil, err
	}
	if view == nil {
		return nil, ErrAdNotFound
	}
	if view.Author.MemberID != principalID {
		logger.Log.Errorw("forbidden ad update", "ad_id", adID, "principal", principalID, "author", view.Author.MemberID)
		return nil, ErrNotAdAuthor
	}

	ad := models.AdDB{
		AdID:        view.AdID,
		Title:       view.Title,
		Description: view.Description,
		Price:       view.Price,
		CategoryID:  view.Category.CategoryID,
		ContactInfo: view.ContactInfo,
		AuthorID:    view.Author.MemberID,
		IsActive:    view.IsActive,
	}

	if patch.Title != nil {
		ad.Title = *patch.Title
	}
	if patch.Description != nil {
		ad.Description = *patch.Description
	}
	if patch.Price != nil {
		ad.Price = *patch.Price
	}
	if patch.ContactInfo != nil {
		ad.ContactInfo = *patch.ContactInfo
	}
	if patch.IsActive != nil {
		ad.IsActive = *patch.IsActive
	}
	if patch.Category.Kind != models.CategoryRefNone {
		category, err := s.resolveCategory(ctx, patch.Category)
		if err != nil {
			return nil, err
		}
		ad.CategoryID = category.CategoryID
	}

	if err := s.writer.Update(ctx, &ad); err != nil {
		logger.Log.Errorw("failed to update ad", "ad_id", adID, "err", err)
		return nil, err
	}

	updated, err := s.reader.GetByID(ctx, adID)
	if err != nil {
		logger.Log.Errorw("failed to read back ad", "ad_id", adID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, EventAdUpdated, adID, principalID)

	return updated, nil
}

// Delete removes an ad. Only the author may delete it.
func (s *AdService) Delete(ctx context.Context, principalID, adID uuid.UUID) error {
	view, err := s.reader.GetByID(ctx, adID)
	if err != nil {
		logger.Log.Errorw("failed to get ad", "ad_id", adID, "err", err)
		return err
	}
	if view == nil {
		return ErrAdNotFound
	}
	if view.Author.MemberID != principalID {
		logger.Log.Errorw("forbidden ad delete", "ad_id", adID, "principal", principalID, "author", view.Author.MemberID)
		return ErrNotAdAuthor
	}

	if err := s.writer.Delete(ctx, adID); err != nil {
		logger.Log.Errorw("failed to delete ad", "ad_id", adID, "err", err)
		return err
	}

	s.publishEvent(ctx, EventAdDeleted, adID, principalID)

	return nil
}

func (s *AdService) resolveCategory(ctx context.Context, ref models.CategoryRef) (*models.CategoryDB, error) {
	var (
		category *models.CategoryDB
		err      error
	)
	switch ref.Kind {
	case models.CategoryRefByID:
		category, err = s.categories.GetByID(ctx, ref.ID)
	case models.CategoryRefBySlug:
		category, err = s.categories.GetBySlug(ctx, ref.Slug)
	default:
		return nil, ErrCategoryRequired
	}
	if err != nil {
		logger.Log.Errorw("failed to resolve category", "err", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// publishEvent publishes an ad event to Kafka. Publishing is best-effort and
// never fails the request.
func (s *AdService) publishEvent(ctx context.Context, eventType string, adID, authorID uuid.UUID) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "ad_id", adID)
		return
	}

	event := models.AdEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		AdID:      adID,
		AuthorID:  authorID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal ad event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(adID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish ad event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("ad event published", "event_id", event.EventID, "type", eventType, "ad_id", adID)
	}
}

// dateLayouts are the accepted date filter layouts: a full datetime or a
// date-only value.
var dateLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02", true},
}

// ParseAdFilter builds a filter conjunction from loose query parameters.
// Unparseable price and date values are silently ignored; unknown ordering
// values fall back to newest-first.
func ParseAdFilter(q url.Values) models.AdFilter {
	filter := models.AdFilter{
		Ordering:   "-created_at",
		OnlyActive: true,
	}

	if v := q.Get("category"); v != "" {
		if isDigits(v) {
			id, err := strconv.ParseInt(v, 10, 64)
			if err == nil {
				filter.CategoryID = &id
			}
		} else {
			filter.CategorySlug = &v
		}
	}

	if v := q.Get("min_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = &d
		}
	}
	if v := q.Get("max_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = &d
		}
	}

	if bound := parseDateBound(q.Get("date_from")); bound != nil {
		filter.DateFrom = bound
	}
	if bound := parseDateBound(q.Get("date_to")); bound != nil {
		filter.DateTo = bound
	}

	filter.Search = q.Get("search")

	switch ordering := q.Get("ordering"); ordering {
	case "price", "-price", "created_at", "-created_at":
		filter.Ordering = ordering
	}

	return filter
}

func parseDateBound(value string) *models.DateBound {
	if value == "" {
		return nil
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l.layout, value); err == nil {
			return &models.DateBound{Time: t, DateOnly: l.dateOnly}
		}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
