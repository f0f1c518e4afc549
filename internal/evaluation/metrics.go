package evaluation

// Accuracy returns hits/total, or 0 for an empty set.
func Accuracy(hits, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// Confusion counts binary predictions against labels.
type Confusion struct {
	TruePositive  int `json:"true_positive"`
	FalsePositive int `json:"false_positive"`
	FalseNegative int `json:"false_negative"`
	TrueNegative  int `json:"true_negative"`
}

// Add records one prediction.
func (c *Confusion) Add(predicted, actual bool) {
	switch {
	case predicted && actual:
		c.TruePositive++
	case predicted && !actual:
		c.FalsePositive++
	case !predicted && actual:
		c.FalseNegative++
	default:
		c.TrueNegative++
	}
}

// Precision returns 1.0 when nothing was predicted positive.
func (c Confusion) Precision() float64 {
	predicted := c.TruePositive + c.FalsePositive
	if predicted == 0 {
		return 1.0
	}
	return float64(c.TruePositive) / float64(predicted)
}

// Recall returns 1.0 when there were no positive labels.
func (c Confusion) Recall() float64 {
	actual := c.TruePositive + c.FalseNegative
	if actual == 0 {
		return 1.0
	}
	return float64(c.TruePositive) / float64(actual)
}

// F1 is the harmonic mean of precision and recall.
func (c Confusion) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0.0
	}
	return 2 * p * r / (p + r)
}
