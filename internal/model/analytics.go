package model

import "github.com/stridelab/backend/pkg/analytics"

type GetAnalyticsRequest struct{}

type GetAnalyticsResponse struct {
	Message         string                           `json:"message,omitempty"`
	Dataset         []analytics.Record               `json:"dataset,omitempty"`
	Statistics      map[string]analytics.ColumnStats `json:"statistics"`
	GroupedAnalysis map[string]map[string]float64    `json:"grouped_analysis,omitempty"`
}
