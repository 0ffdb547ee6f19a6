package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/profitlens/seller-analytics/business/catalog/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/numparse"
)

// ManualLoader adapts LoadManualData to an injectable dependency.
type ManualLoader struct{}

// NewManualLoader creates a ManualLoader.
func NewManualLoader() *ManualLoader {
	return &ManualLoader{}
}

// LoadManualData reads seller manual input keyed by product id.
func (l *ManualLoader) LoadManualData(path string) (map[domain.ProductID]domain.ManualInputData, error) {
	return LoadManualData(path)
}

// manualEntry is the on-disk shape of one product's manual input.
type manualEntry struct {
	CostPerUnit       json.Number `json:"cost_per_unit"`
	SelfPurchaseCount int64       `json:"self_purchase_count"`
	SelfPurchaseCost  json.Number `json:"self_purchase_cost"`
	GiveawayCount     int64       `json:"giveaway_count"`
	GiveawayCost      json.Number `json:"giveaway_cost"`
	MarketingCost     json.Number `json:"marketing_cost"`
}

// LoadManualData reads seller manual input keyed by product id.
//
// The file is a JSON object: {"12345678": {"cost_per_unit": 250, ...}}.
func LoadManualData(path string) (map[domain.ProductID]domain.ManualInputData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.New(apperror.CodeFileUnreadable,
			apperror.WithCause(err), apperror.WithContext(path))
	}

	var raw map[string]manualEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperror.New(apperror.CodeParseError,
			apperror.WithCause(err), apperror.WithContext(path))
	}

	out := make(map[domain.ProductID]domain.ManualInputData, len(raw))
	for key, entry := range raw {
		id, ok := numparse.Int64(key)
		if !ok || !domain.ProductID(id).IsValid() {
			return nil, apperror.New(apperror.CodeManualDataInvalid,
				apperror.WithContext(fmt.Sprintf("%s: bad product id %q", path, key)))
		}

		manual, err := entry.toDomain()
		if err != nil {
			return nil, apperror.New(apperror.CodeManualDataInvalid,
				apperror.WithCause(err), apperror.WithContext(fmt.Sprintf("%s: product %s", path, key)))
		}

		out[domain.ProductID(id)] = manual
	}

	return out, nil
}

func (e manualEntry) toDomain() (domain.ManualInputData, error) {
	toDecimal := func(name string, n json.Number) (decimal.Decimal, error) {
		if n == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", name, err)
		}
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("%s cannot be negative", name)
		}
		return d, nil
	}

	var manual domain.ManualInputData
	var err error

	if e.SelfPurchaseCount < 0 {
		return manual, fmt.Errorf("self_purchase_count cannot be negative")
	}
	if e.GiveawayCount < 0 {
		return manual, fmt.Errorf("giveaway_count cannot be negative")
	}
	manual.SelfPurchaseCount = e.SelfPurchaseCount
	manual.GiveawayCount = e.GiveawayCount

	if manual.CostPerUnit, err = toDecimal("cost_per_unit", e.CostPerUnit); err != nil {
		return manual, err
	}
	if manual.SelfPurchaseCost, err = toDecimal("self_purchase_cost", e.SelfPurchaseCost); err != nil {
		return manual, err
	}
	if manual.GiveawayCost, err = toDecimal("giveaway_cost", e.GiveawayCost); err != nil {
		return manual, err
	}
	if manual.MarketingCost, err = toDecimal("marketing_cost", e.MarketingCost); err != nil {
		return manual, err
	}

	return manual, nil
}
