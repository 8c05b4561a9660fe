package forecast

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"smartstock/pkg/contracts/domain"
)

// DefaultSeed makes the train/test split reproducible across runs.
const DefaultSeed int64 = 42

// UnitsModel predicts units sold from unit price and opening stock via
// multivariate ordinary least squares.
type UnitsModel struct {
	Intercept  float64 `json:"intercept"`
	PriceCoef  float64 `json:"price_coef"`
	StockCoef  float64 `json:"stock_coef"`
	R2         float64 `json:"r2"`
	RMSE       float64 `json:"rmse"`
	MAE        float64 `json:"mae"`
	TrainCount int     `json:"train_count"`
	TestCount  int     `json:"test_count"`
}

// FitUnits splits the dataset (testFrac held out, shuffled with seed),
// fits OLS on the training part and evaluates on the held-out part.
// With too few records for a held-out set, evaluation falls back to the
// training data.
func FitUnits(records []domain.EnrichedRecord, testFrac float64, seed int64) (*UnitsModel, error) {
	if testFrac < 0 || testFrac >= 1 {
		return nil, fmt.Errorf("test fraction must be in [0, 1), got %v", testFrac)
	}

	n := len(records)
	testN := int(float64(n) * testFrac)
	trainN := n - testN
	if trainN < 3 {
		return nil, fmt.Errorf("need at least 3 training records to fit 3 coefficients, have %d", trainN)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	trainIdx := perm[:trainN]
	testIdx := perm[trainN:]

	X := mat.NewDense(trainN, 3, nil)
	y := mat.NewDense(trainN, 1, nil)
	for row, i := range trainIdx {
		r := records[i]
		price, _ := r.Price.Float64()
		X.Set(row, 0, 1)
		X.Set(row, 1, price)
		X.Set(row, 2, float64(r.OpeningStock))
		y.Set(row, 0, float64(r.UnitsSold))
	}

	var qr mat.QR
	qr.Factorize(X)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("solve least squares: %w", err)
	}

	m := &UnitsModel{
		Intercept:  beta.At(0, 0),
		PriceCoef:  beta.At(1, 0),
		StockCoef:  beta.At(2, 0),
		TrainCount: trainN,
		TestCount:  testN,
	}

	evalIdx := testIdx
	if len(evalIdx) == 0 {
		evalIdx = trainIdx
	}
	m.evaluate(records, evalIdx)

	return m, nil
}

// Predict returns the fitted units sold for a price and opening stock.
func (m *UnitsModel) Predict(price, openingStock float64) float64 {
	return m.Intercept + m.PriceCoef*price + m.StockCoef*openingStock
}

func (m *UnitsModel) evaluate(records []domain.EnrichedRecord, idx []int) {
	var ssRes, ssTot, absErr, ySum float64

	for _, i := range idx {
		ySum += float64(records[i].UnitsSold)
	}
	yMean := ySum / float64(len(idx))

	for _, i := range idx {
		r := records[i]
		price, _ := r.Price.Float64()
		actual := float64(r.UnitsSold)
		pred := m.Predict(price, float64(r.OpeningStock))

		ssRes += (actual - pred) * (actual - pred)
		ssTot += (actual - yMean) * (actual - yMean)
		absErr += math.Abs(actual - pred)
	}

	switch {
	case ssTot > 0:
		m.R2 = 1 - ssRes/ssTot
	case ssRes == 0:
		m.R2 = 1
	}
	m.RMSE = math.Sqrt(ssRes / float64(len(idx)))
	m.MAE = absErr / float64(len(idx))
}
