package segmentation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"stayInsights/domain"
	"stayInsights/pkg/logger"

	"github.com/google/uuid"
)

const (
	AlgorithmKMeans       = "kmeans"
	AlgorithmDBSCAN       = "dbscan"
	AlgorithmHierarchical = "hierarchical"
	AlgorithmAuto         = "auto"
)

// ErrInsufficientData carries the exact message the CRM frontend matches on.
var ErrInsufficientData = errors.New("Insufficient customer data. Need at least 10 customers.")

type SegmentationRequest struct {
	TenantID       string                  `json:"tenant_id"`
	CustomerData   []domain.CustomerRecord `json:"customer_data"`
	CustomerIDs    []string                `json:"customer_ids"`
	Algorithm      string                  `json:"algorithm"`
	NClusters      int                     `json:"n_clusters"`
	Features       []string                `json:"features"`
	MinClusterSize int                     `json:"min_cluster_size"`
	Eps            float64                 `json:"eps"`

	// Seed pins centroid seeding for reproducible K-Means runs;
	// 0 means seed from the clock.
	Seed int64 `json:"seed"`
}

type SegmentationService struct {
	customerRepo CustomerRepository
	cfgRepo      ConfigRepository
	rfmCache     RFMCache
	defaultCfg   Config
}

func NewSegmentationService(
	customerRepo CustomerRepository,
	cfgRepo ConfigRepository,
	rfmCache RFMCache,
	defaultCfg Config,
) *SegmentationService {
	return &SegmentationService{
		customerRepo: customerRepo,
		cfgRepo:      cfgRepo,
		rfmCache:     rfmCache,
		defaultCfg:   defaultCfg,
	}
}

// Segment runs one full segmentation pass: prepare features, z-score
// normalize over this batch, cluster, synthesize segments. Everything is
// local to the call; concurrent runs over different batches are safe.
func (s *SegmentationService) Segment(ctx context.Context, req SegmentationRequest) (*domain.ClusteringResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	cfg := s.loadConfigForTenant(ctx, req.TenantID)

	customers, err := s.loadBatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(customers) < cfg.MinBatchSize {
		return nil, ErrInsufficientData
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmAuto
	}
	if algorithm == AlgorithmAuto {
		algorithm = cfg.selectAlgorithm(len(customers))
	}

	nClusters := req.NClusters
	if nClusters <= 0 {
		nClusters = cfg.NClusters
	}
	eps := req.Eps
	if eps <= 0 {
		eps = cfg.Eps
	}
	minPts := req.MinClusterSize
	if minPts <= 0 {
		minPts = cfg.MinPts
	}

	vectors, names, err := prepareFeatures(customers, req.Features, cfg.now())
	if err != nil {
		return nil, err
	}

	normalized := fitNorm(vectors).apply(vectors)
	applyWeights(normalized, names, cfg.FeatureWeights)

	tid := TraceIDFromContext(ctx)
	logger.Debug("segmentation_run",
		"trace_id", tid,
		"tenant_id", req.TenantID,
		"algorithm", algorithm,
		"batch_size", len(customers),
		"features", len(names),
	)

	result := &domain.ClusteringResult{
		RunID:     uuid.NewString(),
		Algorithm: algorithm,
	}

	var labels []int
	switch algorithm {
	case AlgorithmKMeans:
		rng := newRNG(req.Seed)
		run := runKMeans(normalized, nClusters, cfg.MaxIterations, rng)
		labels = run.labels
		inertia := run.inertia
		result.Inertia = &inertia
	case AlgorithmDBSCAN:
		labels = runDBSCAN(normalized, eps, minPts)
		outliers := make([]string, 0)
		for i, l := range labels {
			if l == labelNoise {
				outliers = append(outliers, customers[i].ID)
			}
		}
		result.Outliers = outliers
		SegmentationOutliersTotal.Add(float64(len(outliers)))
	case AlgorithmHierarchical:
		labels = runHierarchical(normalized, nClusters)
	default:
		return nil, fmt.Errorf("unknown clustering algorithm: %s", algorithm)
	}

	result.Segments = buildSegments(labels, customers, cfg)
	result.ClusterCount = len(result.Segments)
	result.SilhouetteScore = silhouetteScore(normalized, labels)

	SegmentationRunsTotal.WithLabelValues(algorithm).Inc()

	logger.Debug("segmentation_done",
		"trace_id", tid,
		"run_id", result.RunID,
		"clusters", result.ClusterCount,
		"silhouette", result.SilhouetteScore,
	)

	return result, nil
}

// PerformRFMAnalysis scores each customer on recency, frequency and
// monetary axes. Independent of the clustering path.
func (s *SegmentationService) PerformRFMAnalysis(ctx context.Context, tenantID string, customers []domain.CustomerRecord) ([]domain.RFMAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(customers) == 0 && s.customerRepo != nil {
		loaded, err := s.customerRepo.FindAll(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("load customers: %w", err)
		}
		customers = loaded
	}
	if len(customers) == 0 {
		return []domain.RFMAnalysis{}, nil
	}

	cfg := s.loadConfigForTenant(ctx, tenantID)

	batchKey := batchCacheKey(customers)
	if s.rfmCache != nil {
		if cached, ok, err := s.rfmCache.Get(ctx, tenantID, batchKey); err == nil && ok {
			return cached, nil
		}
	}

	analyses := analyzeRFM(customers, cfg)

	if s.rfmCache != nil {
		if err := s.rfmCache.Set(ctx, tenantID, batchKey, analyses); err != nil {
			logger.Warn("rfm cache write failed", err)
		}
	}

	return analyses, nil
}

// PredictSegment assigns a customer to the nearest trained segment by
// Euclidean distance between characteristic vectors (spend, frequency,
// satisfaction, age). This replaces an earlier placeholder that returned
// a random distance.
func (s *SegmentationService) PredictSegment(customer domain.CustomerRecord, segments []domain.CustomerSegment) (domain.SegmentPrediction, error) {
	if len(segments) == 0 {
		return domain.SegmentPrediction{}, errors.New("no trained segments supplied")
	}

	point := characteristicVector(
		customer.TotalSpent,
		customer.BookingFrequency,
		customer.SatisfactionScore,
		float64(customer.Age),
	)

	best := segments[0]
	bestDist := -1.0
	for _, seg := range segments {
		centroid := characteristicVector(
			seg.Characteristics.AvgSpending,
			seg.Characteristics.BookingFrequency,
			seg.Characteristics.SatisfactionScore,
			seg.Characteristics.AvgAge,
		)
		d := euclidean(point, centroid)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = seg
		}
	}

	return domain.SegmentPrediction{
		SegmentID:  best.SegmentID,
		Confidence: 1.0 / (1.0 + bestDist),
		Distance:   bestDist,
	}, nil
}

func characteristicVector(spend, freq, sat, age float64) []float64 {
	return []float64{spend, freq, sat, age}
}

// selectAlgorithm is the batch-size heuristic for "auto". A policy
// choice, not a statistically validated selection.
func (cfg Config) selectAlgorithm(batchSize int) string {
	switch {
	case batchSize < cfg.AutoHierarchicalBelow:
		return AlgorithmHierarchical
	case batchSize < cfg.AutoKMeansBelow:
		return AlgorithmKMeans
	default:
		return AlgorithmDBSCAN
	}
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
