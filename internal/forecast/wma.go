package forecast

import "math"

// wmaWeights are the fixed window weights, oldest to newest. The most recent
// week carries half the total weight.
var wmaWeights = [3]float64{1, 2, 3}

// WMA computes the one-step-ahead weighted moving average forecast for the
// next week from an ascending weekly series. With fewer than three weeks of
// history the forecast falls back to the most recent value, or 0 for an empty
// series. The result is rounded to two decimals.
func WMA(weekly []float64) float64 {
	if len(weekly) < 3 {
		if len(weekly) == 0 {
			return 0
		}
		return weekly[len(weekly)-1]
	}

	window := weekly[len(weekly)-3:]
	var weightedSum, weightSum float64
	for i, v := range window {
		weightedSum += v * wmaWeights[i]
		weightSum += wmaWeights[i]
	}

	return round2(weightedSum / weightSum)
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
