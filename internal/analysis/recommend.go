package analysis

import (
	"fmt"
	"strings"

	"valor-backend/internal/i18n"
)

const defaultDaysToOptimal = 3

// Recommend derives purchase/consumption advice from a ripeness and a
// disease record, first match wins. Disease takes precedence over every
// ripeness stage: a diseased item is never recommended for purchase.
func Recommend(ripeness RipenessRecord, disease DiseaseRecord, language string) Recommendation {
	if disease.IsDiseased {
		return Recommendation{
			Action:  ActionAvoid,
			Message: i18n.Translate("avoid_advice", language),
			Reason:  "Disease detected: " + strings.Join(disease.DiseasesDetected, ", "),
		}
	}

	switch ripeness.Stage {
	case StageSpoiled:
		return Recommendation{
			Action:  ActionDiscard,
			Message: i18n.Translate("discard_advice", language),
			Reason:  "Produce is spoiled",
		}
	case StageRipe:
		return Recommendation{
			Action:  ActionBuy,
			Message: i18n.Translate("buy_advice", language),
			Reason:  "Perfect ripeness for consumption",
		}
	case StageUnderripe:
		days := defaultDaysToOptimal
		if ripeness.DaysToOptimal != nil {
			days = *ripeness.DaysToOptimal
		}
		return Recommendation{
			Action:  ActionBuyWait,
			Message: i18n.Translate("wait_advice", language),
			Reason:  fmt.Sprintf("Wait approximately %d days before eating", days),
		}
	case StageOverripe:
		// The overripe message is not looked up from the translation
		// table, unlike the other actions.
		return Recommendation{
			Action:  ActionEatSoon,
			Message: "Eat within 24 hours",
			Reason:  "Overripe but still consumable",
		}
	}

	return Recommendation{
		Action:  ActionUnknown,
		Message: "Unable to generate recommendation",
		Reason:  "Incomplete analysis",
	}
}

// RetryRecommendation is substituted when ripeness or disease failed after
// a successful classification.
func RetryRecommendation() Recommendation {
	return Recommendation{
		Action:  ActionRetry,
		Message: "Some analysis failed, please retry",
		Reason:  "Incomplete analysis due to errors",
	}
}
