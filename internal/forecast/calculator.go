package forecast

import (
	"math"

	"github.com/stokpintar/backend-go/internal/domain"
)

// SafetyStock computes the safety stock for a weekly demand series and a lead
// time in weeks: SS = ceil((Dmax - Davg) * LT). An empty series yields 0.
// Ceiling keeps the threshold from being under-provisioned by truncation.
func SafetyStock(weekly []float64, leadTimeWeeks float64) int {
	if len(weekly) == 0 {
		return 0
	}

	dMax := weekly[0]
	var sum float64
	for _, v := range weekly {
		if v > dMax {
			dMax = v
		}
		sum += v
	}
	dAvg := sum / float64(len(weekly))

	return int(math.Ceil((dMax - dAvg) * leadTimeWeeks))
}

// ReorderPoint computes the reorder point: ROP = ceil(Davg * LT + SS).
// An empty series yields the safety stock directly.
func ReorderPoint(weekly []float64, leadTimeWeeks float64, safetyStock int) int {
	if len(weekly) == 0 {
		return safetyStock
	}

	var sum float64
	for _, v := range weekly {
		sum += v
	}
	dAvg := sum / float64(len(weekly))

	return int(math.Ceil(dAvg*leadTimeWeeks + float64(safetyStock)))
}

// ClassifyStock maps current stock against the reorder point and safety stock.
// Both boundaries are inclusive lower bounds for escalation: stock exactly at
// the reorder point is critical, not warning.
func ClassifyStock(currentStock, reorderPoint, safetyStock int) domain.StockStatus {
	switch {
	case currentStock <= reorderPoint:
		return domain.StatusCritical
	case currentStock <= reorderPoint+safetyStock:
		return domain.StatusWarning
	default:
		return domain.StatusSafe
	}
}
