package services

import "github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"

type RiskBucket string

const (
	RiskBucketLow  RiskBucket = "low"
	RiskBucketMid  RiskBucket = "mid"
	RiskBucketHigh RiskBucket = "high"
)

type InterventionType string

const (
	InterventionNone          InterventionType = "none"
	InterventionGentlePing    InterventionType = "gentle_ping"
	InterventionInvitePartner InterventionType = "invite_partner"
)

type ChurnRisk struct {
	RiskScore        float64          `json:"risk_score"`
	RiskBucket       RiskBucket       `json:"risk_bucket"`
	InterventionType InterventionType `json:"intervention_type"`
}

// PredictChurnRisk scores how likely the user is to stop checking in,
// from nothing but the gap since the last check-in: same day is low risk,
// one missed day is mid, two or more is high. A user with no check-in
// history at all starts at mid with a gentle ping.
func PredictChurnRisk(lastCheckIn *domain.Date, today domain.Date) ChurnRisk {
	if lastCheckIn == nil || lastCheckIn.IsZero() {
		return ChurnRisk{RiskScore: 0.5, RiskBucket: RiskBucketMid, InterventionType: InterventionGentlePing}
	}

	switch days := today.DaysSince(*lastCheckIn); {
	case days <= 0:
		return ChurnRisk{RiskScore: 0.1, RiskBucket: RiskBucketLow, InterventionType: InterventionNone}
	case days == 1:
		return ChurnRisk{RiskScore: 0.5, RiskBucket: RiskBucketMid, InterventionType: InterventionGentlePing}
	default:
		return ChurnRisk{RiskScore: 0.8, RiskBucket: RiskBucketHigh, InterventionType: InterventionInvitePartner}
	}
}
