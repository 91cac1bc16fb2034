package service

import (
	"errors"

	"github.com/gogotex/docstore/internal/config"
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Service defines the document store operations exposed to callers.
type Service interface {
	Save(d document.Document) (document.Document, error)
	FindByID(id string) (document.Document, bool)
	Search(req document.SearchRequest) []document.Document
}

type Option func(*memoryService)

// WithValidation makes Save reject documents that fail document.Validate.
func WithValidation(enabled bool) Option {
	return func(s *memoryService) { s.validate = enabled }
}

var (
	ErrNilConfig = errors.New("document store config is nil")
)

// WithMetrics records every operation on m. m must already be registered.
func WithMetrics(m *metrics.Store) Option {
	return func(s *memoryService) { s.metrics = m }
}

// WithRepo lets callers share or pre-seed the underlying repository.
func WithRepo(r *repository.MemoryRepo) Option {
	return func(s *memoryService) {
		if r != nil {
			s.repo = r
		}
	}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(opts ...Option) Service {
	s := &memoryService{repo: repository.NewMemoryRepo()}
	for _, o := range opts {
		o(s)
	}
	if s.metrics != nil {
		s.metrics.Documents.Set(float64(s.repo.Len()))
	}
	return s
}

// NewFromConfig applies cfg to the logger and the service. Metrics are
// registered on reg when enabled; reg may be nil to skip metrics entirely.
// Registering a second store under the same namespace on one registerer
// fails with an error wrapping prometheus.AlreadyRegisteredError.
func NewFromConfig(cfg *config.Config, reg prometheus.Registerer) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	logger.Init(cfg.LogLevel)
	opts := []Option{WithValidation(cfg.Store.Validate)}
	if cfg.Metrics.Enabled && reg != nil {
		m := metrics.NewStore(cfg.Metrics.Namespace)
		if err := m.RegisterCollectors(reg); err != nil {
			logger.Errorf("document store metrics: %v", err)
			return nil, err
		}
		opts = append(opts, WithMetrics(m))
	}
	logger.WithFields(logger.Fields{
		"validate": cfg.Store.Validate,
		"metrics":  cfg.Metrics.Enabled && reg != nil,
	}).Info("document store ready")
	return NewMemoryService(opts...), nil
}

type memoryService struct {
	repo     *repository.MemoryRepo
	validate bool
	metrics  *metrics.Store
}

func (s *memoryService) Save(d document.Document) (document.Document, error) {
	if s.validate {
		if err := document.Validate(d); err != nil {
			logger.WithField("document_id", d.ID).Warnf("rejecting document: %v", err)
			if s.metrics != nil {
				s.metrics.ValidationFailures.Inc()
			}
			return document.Document{}, err
		}
	}

	saved, replaced := s.repo.Save(d)
	op := "insert"
	if replaced {
		op = "update"
	}

	logger.WithFields(logger.Fields{"document_id": saved.ID, "op": op}).Debug("document saved")
	if s.metrics != nil {
		s.metrics.Saves.WithLabelValues(op).Inc()
		if !replaced {
			s.metrics.Documents.Inc()
		}
	}
	return saved, nil
}

func (s *memoryService) FindByID(id string) (document.Document, bool) {
	d, ok := s.repo.FindByID(id)
	result := "hit"
	if !ok {
		result = "miss"
	}
	logger.WithFields(logger.Fields{"document_id": id, "result": result}).Debug("document lookup")
	if s.metrics != nil {
		s.metrics.Lookups.WithLabelValues(result).Inc()
	}
	return d, ok
}

func (s *memoryService) Search(req document.SearchRequest) []document.Document {
	out := s.repo.Search(req)
	logger.WithFields(logger.Fields{
		"title_prefixes":    len(req.TitlePrefixes),
		"contains_contents": len(req.ContainsContents),
		"author_ids":        len(req.AuthorIDs),
		"created_from":      req.CreatedFrom != nil,
		"created_to":        req.CreatedTo != nil,
		"results":           len(out),
	}).Debug("document search")
	if s.metrics != nil {
		s.metrics.Searches.Inc()
		s.metrics.SearchResults.Observe(float64(len(out)))
	}
	return out
}
