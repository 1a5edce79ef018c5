package segmentation

import (
	"context"
	"stayInsights/domain"
)

// loadConfigForTenant reads the tenant's config row and overlays it on the
// service defaults, keeping sane fallbacks for any missing fields.
func (s *SegmentationService) loadConfigForTenant(ctx context.Context, tenantID string) Config {
	cfg := s.defaultCfg

	if s.cfgRepo == nil || tenantID == "" {
		return cfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx, tenantID)
	if err != nil || !ok {
		return cfg
	}

	cfg.applyOverrides(dbCfg)
	return cfg
}

func (cfg *Config) applyOverrides(dbCfg domain.SegmentationConfig) {
	if dbCfg.NClusters > 0 {
		cfg.NClusters = dbCfg.NClusters
	}
	if dbCfg.Eps > 0 {
		cfg.Eps = dbCfg.Eps
	}
	if dbCfg.MinPts > 0 {
		cfg.MinPts = dbCfg.MinPts
	}
	if dbCfg.GrowthFrequencyDenom > 0 {
		cfg.GrowthFrequencyDenom = dbCfg.GrowthFrequencyDenom
	}
	if dbCfg.ProfitSpendDenom > 0 {
		cfg.ProfitSpendDenom = dbCfg.ProfitSpendDenom
	}

	if len(dbCfg.FeatureWeights) > 0 {
		// copy-on-override so the shared default table stays untouched
		weights := make(map[string]float64, len(cfg.FeatureWeights))
		for k, v := range cfg.FeatureWeights {
			weights[k] = v
		}
		for k, v := range dbCfg.FeatureWeights {
			weights[k] = v
		}
		cfg.FeatureWeights = weights
	}

	if t := dbCfg.RFMThresholds; t != nil {
		if len(t.RecencyDays) == 4 {
			cfg.RecencyDays = t.RecencyDays
		}
		if len(t.Frequency) == 4 {
			cfg.Frequency = t.Frequency
		}
		if len(t.Monetary) == 4 {
			cfg.Monetary = t.Monetary
		}
	}
}
