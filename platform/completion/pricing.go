package completion

import "strings"

// Price is USD per one million tokens.
type Price struct {
	Input  float64
	Output float64
}

const defaultPricedModel = "gpt-4o-mini"

var prices = map[string]Price{
	"gpt-4o-mini":  {Input: 0.15, Output: 0.60},
	"gpt-4o":       {Input: 2.50, Output: 10.00},
	"gpt-4.1-mini": {Input: 0.40, Output: 1.60},
	"gpt-4.1":      {Input: 2.00, Output: 8.00},
}

// EstimateCost prices a call. Dated snapshots ("gpt-4o-mini-2024-07-18")
// use the price of their base model; unknown models are priced as
// gpt-4o-mini.
func EstimateCost(modelName string, inputTokens, outputTokens int) float64 {
	p := priceFor(modelName)
	return float64(inputTokens)*p.Input/1_000_000 + float64(outputTokens)*p.Output/1_000_000
}

func priceFor(modelName string) Price {
	if p, ok := prices[modelName]; ok {
		return p
	}
	best := ""
	for name := range prices {
		if strings.HasPrefix(modelName, name+"-") && len(name) > len(best) {
			best = name
		}
	}
	if best != "" {
		return prices[best]
	}
	return prices[defaultPricedModel]
}
