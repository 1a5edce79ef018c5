package segmentation

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"stayInsights/domain"
)

// loadBatch resolves the customer batch for a run: inline records win,
// then explicit IDs, then the tenant's full roster.
func (s *SegmentationService) loadBatch(ctx context.Context, req SegmentationRequest) ([]domain.CustomerRecord, error) {
	if len(req.CustomerData) > 0 {
		return req.CustomerData, nil
	}

	if s.customerRepo == nil {
		return nil, fmt.Errorf("no customer data supplied and no customer repository configured")
	}

	if len(req.CustomerIDs) > 0 {
		customers, err := s.customerRepo.FindByIDs(ctx, req.TenantID, req.CustomerIDs)
		if err != nil {
			return nil, fmt.Errorf("load customers by ids: %w", err)
		}
		return customers, nil
	}

	customers, err := s.customerRepo.FindAll(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	return customers, nil
}

// batchCacheKey hashes the sorted customer IDs so identical batches hit
// the same cache entry regardless of input order.
func batchCacheKey(customers []domain.CustomerRecord) string {
	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}
	sort.Strings(ids)

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(ids, "|")))
	return fmt.Sprintf("%x", h.Sum64())
}
