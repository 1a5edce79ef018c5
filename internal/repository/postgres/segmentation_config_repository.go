package postgres

import (
	"context"
	"encoding/json"
	"stayInsights/business/segmentation"
	"stayInsights/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SegmentationConfigRepository struct {
	DB *gorm.DB
}

var _ segmentation.ConfigRepository = (*SegmentationConfigRepository)(nil)

func NewSegmentationConfigRepository(db *gorm.DB) *SegmentationConfigRepository {
	return &SegmentationConfigRepository{DB: db}
}

func (r *SegmentationConfigRepository) GetConfig(ctx context.Context, tenantID string) (domain.SegmentationConfig, bool, error) {
	var cfg domain.SegmentationConfig

	err := r.DB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		return domain.SegmentationConfig{}, false, nil
	}
	if err != nil {
		return domain.SegmentationConfig{}, false, err
	}

	if len(cfg.FeatureWeightsRaw) > 0 {
		_ = json.Unmarshal(cfg.FeatureWeightsRaw, &cfg.FeatureWeights)
	}
	if len(cfg.RFMThresholdsRaw) > 0 {
		_ = json.Unmarshal(cfg.RFMThresholdsRaw, &cfg.RFMThresholds)
	}
	return cfg, true, nil
}

func (r *SegmentationConfigRepository) UpsertConfig(ctx context.Context, cfg domain.SegmentationConfig) error {
	// serialize struct fields into the raw JSON columns when they were
	// set in memory but not yet encoded
	if len(cfg.FeatureWeightsRaw) == 0 && len(cfg.FeatureWeights) > 0 {
		raw, _ := json.Marshal(cfg.FeatureWeights)
		cfg.FeatureWeightsRaw = raw
	}
	if len(cfg.RFMThresholdsRaw) == 0 && cfg.RFMThresholds != nil {
		raw, _ := json.Marshal(cfg.RFMThresholds)
		cfg.RFMThresholdsRaw = raw
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"n_clusters",
				"eps",
				"min_pts",
				"growth_frequency_denom",
				"profit_spend_denom",
				"feature_weights",
				"rfm_thresholds",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
