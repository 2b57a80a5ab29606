package forecast

import "math"

// MAPE computes the mean absolute percentage error between parallel actual and
// forecast sequences, as a percentage rounded to two decimals. Indices where
// the actual value is not strictly positive are excluded from both the error
// sum and the divisor, so a zero actual never divides. When no index
// qualifies the result is 0.
func MAPE(actual, forecast []float64) float64 {
	n := len(actual)
	if len(forecast) < n {
		n = len(forecast)
	}

	var totalError float64
	var count int
	for i := 0; i < n; i++ {
		if actual[i] > 0 {
			totalError += math.Abs(actual[i]-forecast[i]) / actual[i]
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return round2(totalError / float64(count) * 100)
}

// BacktestMAPE back-tests the WMA forecaster against a weekly series: for each
// week from index 3 onward it forecasts from the three preceding weeks and
// compares against the actual value. It returns nil when the series is shorter
// than four weeks, in which case the accuracy is undefined rather than zero.
func BacktestMAPE(weekly []float64) *float64 {
	if len(weekly) < 4 {
		return nil
	}

	actual := weekly[3:]
	forecasts := make([]float64, 0, len(actual))
	for i := 3; i < len(weekly); i++ {
		forecasts = append(forecasts, WMA(weekly[i-3:i]))
	}

	mape := MAPE(actual, forecasts)

	return &mape
}
